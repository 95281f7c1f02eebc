// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：读取配置、打开档案存储、
// 创建竞技场和加载场景，并实现 ebiten.Game。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"

	"github.com/decker502/gunroom/pkg/assets"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/embedded"
	"github.com/decker502/gunroom/pkg/game"
	"github.com/decker502/gunroom/pkg/input"
	"github.com/decker502/gunroom/pkg/scenes"
	"github.com/decker502/gunroom/pkg/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// ArenaScene 场景工厂使用的竞技场名称
const ArenaScene = "arena"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 嵌入资源中的竞技场配置路径
	ConfigPath string
	// Seed 随机种子，0 表示随机
	Seed uint64
	// NoSave 不读写档案（仅内存）
	NoSave bool
	// Hooks 遥测实现，nil 时不记录
	Hooks telemetry.Hooks
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	source       *input.EbitenSource
	arena        *scenes.GameScene
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	models, err := embedded.Sub("assets")
	if err != nil {
		return nil, fmt.Errorf("模型目录不可用: %w", err)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		source:       input.NewEbitenSource(),
		verbose:      cfg.Verbose,
	}
	a.arena = newArena(gameConfig, models, openProfiles(cfg.NoSave), cfg.Hooks, cfg.Seed, a.source)

	a.sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != ArenaScene {
			return nil
		}
		return scenes.NewLoadingScene(a.arena.Loader(), a.sceneManager, a.arena)
	})
	if !a.sceneManager.Load(ArenaScene) {
		return nil, fmt.Errorf("场景 %s 创建失败", ArenaScene)
	}
	return a, nil
}

func loadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		log.Printf("[App] No config path, using built-in arena layout")
		return config.DefaultGameConfig(), nil
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("配置文件读取失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置文件 %s 无效: %w", path, err)
	}
	log.Printf("[Config] Loaded %s: %d weapons, %d crates", path, len(gameConfig.Weapons), len(gameConfig.Crates))
	return gameConfig, nil
}

// openProfiles 打开档案存储；失败时降级为仅内存档案
func openProfiles(noSave bool) *game.ProfileManager {
	if noSave {
		log.Printf("[App] Saving disabled, profile kept in memory")
		return game.NewProfileManager(nil)
	}
	gd, err := gdata.Open(gdata.Config{AppName: "gunroom"})
	if err != nil {
		log.Printf("[App] Warning: profile storage unavailable: %v", err)
		return game.NewProfileManager(nil)
	}
	return game.NewProfileManager(gd)
}

func newArena(cfg *config.GameConfig, models fs.FS, profiles *game.ProfileManager, hooks telemetry.Hooks, seed uint64, pointer scenes.PointerLocker) *scenes.GameScene {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
		log.Printf("[App] Using seed %d", seed)
	}
	manager := assets.NewManager()
	manager.OnError = func(item string, err error) {
		log.Printf("[App] Asset %s failed, arena will stay on the loading screen: %v", item, err)
	}
	return scenes.NewGameScene(scenes.Options{
		Config:   cfg,
		Loader:   assets.NewLoader(models, manager),
		Profiles: profiles,
		Hooks:    hooks,
		Rand:     rng,
		Pointer:  pointer,
	})
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if a.sceneManager.GetCurrentScene() == game.Scene(a.arena) {
		a.source.Poll(a.arena.Input())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑色 letterbox 并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 在游戏关闭时保存当前场景的档案
func (a *App) SaveOnExit() bool {
	return a.sceneManager.SaveOnExit()
}

// Snapshot 返回竞技场最近一帧的状态，可在任意 goroutine 调用
func (a *App) Snapshot() scenes.Snapshot {
	return a.arena.Snapshot()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
