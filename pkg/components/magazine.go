package components

import (
	"image/color"

	"github.com/decker502/gunroom/pkg/ecs"
)

// MagazineComponent 玩家弹匣：在飞行中的子弹集合
// 不变量：len(Bullets) <= Capacity
type MagazineComponent struct {
	Capacity    int
	Bullets     []ecs.EntityID
	BulletColor color.RGBA
}

// Full 弹匣是否已满
func (m *MagazineComponent) Full() bool {
	return len(m.Bullets) >= m.Capacity
}

// Remaining 剩余可发射数量
func (m *MagazineComponent) Remaining() int {
	return m.Capacity - len(m.Bullets)
}
