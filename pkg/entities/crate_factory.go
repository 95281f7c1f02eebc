package entities

import (
	"image/color"
	"log"

	"github.com/decker502/gunroom/pkg/assets"
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

// TierColors 宝石各档位的颜色：普通、稀有、史诗、传说
var TierColors = [4]color.RGBA{
	{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
	{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
	{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
	{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff},
}

// TierNames 档位名称，用于奖励文字
var TierNames = [4]string{"common", "rare", "epic", "legendary"}

// CrateTier 根据 [0,1) 的随机数决定档位：≤0.4, ≤0.7, ≤0.9, 其余
func CrateTier(roll float64) int {
	switch {
	case roll <= 0.4:
		return 0
	case roll <= 0.7:
		return 1
	case roll <= 0.9:
		return 2
	}
	return 3
}

// CratePayout crate5 的奖励：{0, win, 2win, 5win}[tier]
func CratePayout(tier, win int) int {
	switch tier {
	case 1:
		return win
	case 2:
		return 2 * win
	case 3:
		return 5 * win
	}
	return 0
}

// NewCrates 创建配置中的全部宝箱
func (f *Factory) NewCrates() []ecs.EntityID {
	var ids []ecs.EntityID
	for _, cc := range f.Config.Crates {
		ids = append(ids, f.NewCrate(cc))
	}
	return ids
}

// NewCrate 创建一个可点击的宝箱（只有视觉，无刚体）
func (f *Factory) NewCrate(cc config.CrateConfig) ecs.EntityID {
	variant, ok := components.PickableForCrate(cc.ID)
	if !ok {
		log.Printf("[CrateFactory] Unknown crate %q", cc.ID)
		return 0
	}
	c, err := assets.ParseColor(cc.Color)
	if err != nil {
		c = white
	}
	node := scenegraph.NewMesh(cc.ID, mgl64.Vec3{1, 1, 1}, c)
	node.Position = vec(cc.Position)
	node.Tag = variant
	node.SetShadows(true, true)

	id := f.spawnVisual(components.KindCrate, node)
	f.EM.AddComponent(id, &components.CrateComponent{Variant: variant, Price: cc.Price})
	f.EM.AddComponent(id, &components.PickableComponent{Variant: variant})
	f.EM.AddComponent(id, &components.SpinComponent{RatePerFrame: config.PickableSpinPerFrame})
	return id
}

// NewGem 在 pos 处生成一颗宝石，以随机速度弹出
// 网格顶点先去重再构建凸包
func (f *Factory) NewGem(pos mgl64.Vec3, tier, payout int, reward bool) ecs.EntityID {
	if tier < 0 || tier >= len(TierColors) {
		tier = 0
	}
	unique := DedupeVertices(octahedronSoup(0.6), 1e-9)
	for i := range unique {
		jitter := 0.7 + f.Rand.Float64()*0.6
		unique[i] = unique[i].Mul(jitter)
	}

	node := scenegraph.NewMesh("gem", boundsOf(unique), TierColors[tier])
	node.SetShadows(true, true)

	velocity := mgl64.Vec3{
		(f.Rand.Float64() - 0.5) * 10,
		10 + f.Rand.Float64()*5,
		(f.Rand.Float64() - 0.5) * 10,
	}
	id := f.spawnBody(components.KindGem, physics.BodyDesc{
		Mass:     config.GemMass,
		Shape:    physics.ConvexHull(unique),
		Position: pos,
		Velocity: velocity,
		Group:    physics.GroupObjects,
		Mask:     physics.MaskObjects,
	}, node)
	f.EM.AddComponent(id, &components.GemComponent{
		Color:  TierColors[tier],
		Tier:   tier,
		Payout: payout,
		Reward: reward,
	})
	return id
}
