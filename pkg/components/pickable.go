package components

// Pickable 可被鼠标射线选中的物体种类
type Pickable int

const (
	PickSmallGun Pickable = iota + 1
	PickMediumGun
	PickBigGun
	PickResetButton
	PickCrate1
	PickCrate2
	PickCrate5
)

func (p Pickable) String() string {
	switch p {
	case PickSmallGun:
		return "littleGun"
	case PickMediumGun:
		return "mediumGun"
	case PickBigGun:
		return "bigGun"
	case PickResetButton:
		return "resetButton"
	case PickCrate1:
		return "crate1"
	case PickCrate2:
		return "crate2"
	case PickCrate5:
		return "crate5"
	}
	return "none"
}

// IsGun 是否为枪
func (p Pickable) IsGun() bool {
	return p == PickSmallGun || p == PickMediumGun || p == PickBigGun
}

// IsCrate 是否为宝箱
func (p Pickable) IsCrate() bool {
	return p == PickCrate1 || p == PickCrate2 || p == PickCrate5
}

// WeaponSize 枪对应的尺寸，非枪返回 WeaponSmall
func (p Pickable) WeaponSize() WeaponSize {
	switch p {
	case PickMediumGun:
		return WeaponMedium
	case PickBigGun:
		return WeaponBig
	}
	return WeaponSmall
}

// PickableForWeapon 尺寸到枪的映射
func PickableForWeapon(s WeaponSize) Pickable {
	switch s {
	case WeaponMedium:
		return PickMediumGun
	case WeaponBig:
		return PickBigGun
	}
	return PickSmallGun
}

// PickableForCrate 宝箱 ID 到种类的映射
func PickableForCrate(id string) (Pickable, bool) {
	switch id {
	case "crate1":
		return PickCrate1, true
	case "crate2":
		return PickCrate2, true
	case "crate5":
		return PickCrate5, true
	}
	return 0, false
}

// PickableComponent 标记实体可被点击交互
// 对应视觉节点的 Tag 也存放同一个 Pickable 值，射线命中后据此分派
type PickableComponent struct {
	Variant Pickable
}
