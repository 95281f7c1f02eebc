package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game: the loading placeholder or the arena.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Saveable 场景在程序退出时保存档案
//
// 调用时机：
//   - 游戏窗口关闭
//   - 收到退出信号
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
