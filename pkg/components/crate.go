package components

// CrateComponent 抽奖宝箱
type CrateComponent struct {
	Variant Pickable // PickCrate1 / PickCrate2 / PickCrate5
	Price   int
}
