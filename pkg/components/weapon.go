package components

import "github.com/decker502/gunroom/pkg/ecs"

// WeaponSize 枪械尺寸，决定子弹半径和质量
type WeaponSize int

const (
	WeaponSmall WeaponSize = iota
	WeaponMedium
	WeaponBig
)

func (s WeaponSize) String() string {
	switch s {
	case WeaponMedium:
		return "medium"
	case WeaponBig:
		return "big"
	default:
		return "small"
	}
}

// ParseWeaponSize 解析配置中的尺寸名，未知名称视为 small
func ParseWeaponSize(s string) WeaponSize {
	switch s {
	case "medium":
		return WeaponMedium
	case "big":
		return WeaponBig
	default:
		return WeaponSmall
	}
}

// BulletProfile 子弹参数
type BulletProfile struct {
	Radius float64
	Mass   float64
}

// WeaponComponent 展示台上的一把枪
// 状态：未拥有（上锁）→ 已拥有未选中 → 选中
type WeaponComponent struct {
	Size     WeaponSize
	Price    int
	Owned    bool
	Selected bool
	BaseY    float64 // 未选中时的高度；选中时抬高

	Bullet     BulletProfile
	Silhouette string

	// 购买后移除的装饰实体（锁和价格牌），0 表示没有
	Lock     ecs.EntityID
	PriceTag ecs.EntityID
}
