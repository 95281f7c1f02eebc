package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/gunroom/pkg/assets"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	loadingBarBack = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	loadingBarFill = color.RGBA{R: 0xff, G: 0xc0, B: 0x00, A: 0xff}
)

// LoadingScene 资源加载门：显示进度，直到加载管理器报告全部成功才切到下一个场景
// 任何一个资源失败，门会一直关着
type LoadingScene struct {
	loader       *assets.Loader
	sceneManager *game.SceneManager
	next         game.Scene

	elapsed  float64
	switched bool
}

// NewLoadingScene 创建加载场景；next 通常是已开始加载模型的竞技场
func NewLoadingScene(loader *assets.Loader, sm *game.SceneManager, next game.Scene) *LoadingScene {
	return &LoadingScene{loader: loader, sceneManager: sm, next: next}
}

// Ready 加载门是否已打开
func (s *LoadingScene) Ready() bool {
	m := s.loader.Manager()
	total, _, _ := m.Counts()
	return total == 0 || m.Loaded()
}

// Update 分发加载回调并检查加载门
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.loader.Dispatch()
	if s.switched || !s.Ready() {
		return
	}
	s.switched = true
	log.Printf("[LoadingScene] Resources loaded in %.2fs, entering arena", s.elapsed)
	s.sceneManager.SwitchTo(s.next)
}

// Draw 画进度条和计数
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	x := (w - config.LoadingBarWidth) / 2
	y := h / 2

	progress := s.loader.Manager().Progress()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(config.LoadingBarWidth), float32(config.LoadingBarHeight), loadingBarBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(config.LoadingBarWidth*progress), float32(config.LoadingBarHeight), loadingBarFill, false)

	total, loaded, failed := s.loader.Manager().Counts()
	msg := fmt.Sprintf("Loading... %d/%d", loaded, total)
	if failed > 0 {
		msg = fmt.Sprintf("Loading... %d/%d (%d failed)", loaded, total, failed)
	}
	ebitenutil.DebugPrintAt(screen, msg, int(x), int(y+config.LoadingTextOffsetY))
}

// SaveOnExit 仍在加载时退出，把保存转交给下一个场景
func (s *LoadingScene) SaveOnExit() bool {
	if saveable, ok := s.next.(game.Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}
