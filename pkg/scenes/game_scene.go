package scenes

import (
	"io/fs"
	"log"
	"math/rand/v2"
	"sync/atomic"

	"github.com/decker502/gunroom/pkg/assets"
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/entities"
	"github.com/decker502/gunroom/pkg/game"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/decker502/gunroom/pkg/input"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/decker502/gunroom/pkg/systems"
	"github.com/decker502/gunroom/pkg/telemetry"
	"github.com/go-gl/mathgl/mgl64"
)

// PointerLocker 请求锁定鼠标（ebiten 下为捕获光标）
type PointerLocker interface {
	RequestPointerLock()
}

// Options 创建竞技场场景所需的依赖，零值字段使用默认实现
type Options struct {
	Config *config.GameConfig
	// Models 模型描述文件；Loader 为 nil 时用它创建加载器
	Models fs.FS
	Loader *assets.Loader
	// Profiles 为 nil 时不持久化，使用配置里的初始值
	Profiles *game.ProfileManager
	Hooks    telemetry.Hooks
	Rand     *rand.Rand
	Pointer  PointerLocker
}

// GameScene 竞技场：持有实体管理器、物理世界、场景图、HUD、经济状态和全部系统
//
// 每帧顺序：
//  1. 分发资源回调、排空输入队列
//  2. 处理点击交互
//  3. 摆动障碍物 → 物理步进 → 玩家控制 → 换弹计时
//  4. 击杀平面检查 → 同步视觉 → 拾取物旋转
type GameScene struct {
	cfg      *config.GameConfig
	em       *ecs.EntityManager
	world    *physics.SimpleWorld
	graph    *scenegraph.Graph
	loader   *assets.Loader
	factory  *entities.Factory
	state    *game.GameState
	hud      *hud.State
	hooks    telemetry.Hooks
	profiles *game.ProfileManager
	pointer  PointerLocker

	queue    *input.Queue
	keys     *input.State
	bindings input.Bindings

	player ecs.EntityID

	control     *systems.PlayerControlSystem
	shooting    *systems.ShootingSystem
	interaction *systems.InteractionSystem
	obstacles   *systems.ObstacleSystem
	sync        *systems.SyncSystem
	killPlane   *systems.KillPlaneSystem
	spin        *systems.SpinSystem

	nowMs    float64 // 模拟时钟（毫秒），驱动障碍物摆动
	frames   int
	snapshot atomic.Pointer[Snapshot]
}

// NewGameScene 创建竞技场并生成全部实体
// 模型异步加载，加载完成前对应实体不可见
func NewGameScene(opts Options) *GameScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	hooks := opts.Hooks
	if hooks == nil {
		hooks = telemetry.Nop{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	loader := opts.Loader
	if loader == nil {
		loader = assets.NewLoader(opts.Models, nil)
	}

	s := &GameScene{
		cfg:      cfg,
		em:       ecs.NewEntityManager(),
		world:    physics.NewSimpleWorld(mgl64.Vec3{0, config.Gravity, 0}),
		graph:    scenegraph.NewGraph(),
		loader:   loader,
		hud:      hud.NewState(),
		hooks:    hooks,
		profiles: opts.Profiles,
		pointer:  opts.Pointer,
		queue:    input.NewQueue(),
		keys:     input.NewState(),
		bindings: input.DefaultBindings(),
	}
	s.factory = entities.NewFactory(s.em, s.world, s.graph, loader, cfg, rng)
	s.factory.Hooks = hooks

	start := s.startingLoadout()
	s.state = game.NewGameState(start.coins)
	s.state.OnCoinsChanged = func(coins int) {
		s.hud.SetCoins(coins)
		s.hooks.CoinsChanged(coins)
	}

	s.buildArena(start)
	s.buildSystems()

	s.hud.SetCoins(s.state.Coins())
	s.hud.SetAmmo(start.capacity)
	s.hooks.CoinsChanged(s.state.Coins())
	s.publishSnapshot()

	log.Printf("[GameScene] Arena ready: %d entities, %d bodies, %d coins",
		s.em.Count(), s.world.BodyCount(), s.state.Coins())
	return s
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.frames++
	// 资源回调只在帧线程执行
	s.loader.Dispatch()

	clicks := 0
	for _, ev := range s.queue.Drain() {
		if ev.Type == input.EventClick {
			clicks++
			continue
		}
		s.handleEvent(ev)
	}
	for ; clicks > 0; clicks-- {
		s.handleClick()
	}

	s.nowMs += deltaTime * 1000
	s.obstacles.Update(s.nowMs)
	s.world.Step(config.PhysicsTimeStep())
	s.control.Update()
	s.shooting.Update(deltaTime)
	if s.killPlane.Update() {
		log.Printf("[GameScene] Arena reset after enemy death (frame %d)", s.frames)
	}
	s.sync.Update()
	s.spin.Update()

	s.publishSnapshot()
}

func (s *GameScene) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventKeyDown:
		s.keys.Set(ev.Key, true)
	case input.EventKeyUp:
		s.keys.Set(ev.Key, false)
		switch ev.Key {
		case s.bindings.Fire:
			s.shooting.Fire()
		case s.bindings.Reload:
			s.shooting.RequestReload()
		}
	case input.EventMouseMove:
		s.control.Look(ev.DX, ev.DY)
	case input.EventPointerLock:
		s.control.PointerLocked = ev.Locked
		s.hud.SetPaused(!ev.Locked)
		if !ev.Locked {
			s.keys.Reset()
		}
	}
}

// handleClick 隐藏教程和暂停层，请求锁定鼠标，然后做拾取判定
func (s *GameScene) handleClick() {
	s.hud.SetTutorial(false)
	s.hud.SetPaused(false)
	if s.pointer != nil && !s.control.PointerLocked {
		s.pointer.RequestPointerLock()
	}
	outcome := s.interaction.Click()
	if outcome != systems.OutcomeNone {
		log.Printf("[GameScene] Click: %s", outcome)
	}
}

// Input 宿主把事件推入该队列，下一帧统一处理
func (s *GameScene) Input() *input.Queue { return s.queue }

// HUD 返回 HUD 状态（只读使用）
func (s *GameScene) HUD() *hud.State { return s.hud }

// Economy 返回金币状态
func (s *GameScene) Economy() *game.GameState { return s.state }

// Factory 返回实体工厂
func (s *GameScene) Factory() *entities.Factory { return s.factory }

// Player 返回玩家实体
func (s *GameScene) Player() ecs.EntityID { return s.player }

// Loader 返回模型加载器
func (s *GameScene) Loader() *assets.Loader { return s.loader }

// Clock 返回模拟时钟（毫秒）
func (s *GameScene) Clock() float64 { return s.nowMs }

// PlacePlayer 把玩家放到 pos 并朝向 yaw，速度清零
func (s *GameScene) PlacePlayer(pos mgl64.Vec3, yaw float64) {
	s.control.Teleport(pos)
	if b, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.em, s.player); ok {
		if body := s.world.Body(b.Body); body != nil {
			body.Velocity = mgl64.Vec3{}
		}
	}
	if cam, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.player); ok {
		cam.Yaw = yaw
		cam.Pitch = 0
	}
}
