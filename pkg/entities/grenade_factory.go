package entities

import (
	"image/color"
	"math"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	grenadeColor = color.RGBA{R: 0x3b, G: 0x5e, B: 0x2b, A: 0xff}
	buttonColor  = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
)

// NewGrenadePyramid 堆出一个方形金字塔：第 l 层为 (layers-l)² 颗手雷
// 上层手雷落在下层四颗之间的凹槽里
func (f *Factory) NewGrenadePyramid() []ecs.EntityID {
	cfg := f.Config.Grenades
	origin := vec(cfg.Origin)
	r := cfg.Radius
	var ids []ecs.EntityID
	for layer := 0; layer < cfg.Layers; layer++ {
		n := cfg.Layers - layer
		y := r + float64(layer)*r*math.Sqrt2
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				pos := origin.Add(mgl64.Vec3{
					(float64(i) - float64(n-1)/2) * 2 * r,
					y,
					(float64(j) - float64(n-1)/2) * 2 * r,
				})
				ids = append(ids, f.NewGrenade(pos))
			}
		}
	}
	return ids
}

// NewGrenade 创建一颗手雷
func (f *Factory) NewGrenade(pos mgl64.Vec3) ecs.EntityID {
	r := f.Config.Grenades.Radius
	mass := f.Config.Grenades.Mass
	node := scenegraph.NewMesh("grenade", mgl64.Vec3{r, r, r}, grenadeColor)
	node.SetShadows(true, true)
	return f.spawnBody(components.KindGrenade, physics.BodyDesc{
		Mass:     mass,
		Shape:    physics.Sphere(r),
		Position: pos,
		Group:    physics.GroupObjects,
		Mask:     physics.MaskObjects,
	}, node)
}

// NewResetButton 创建重建手雷金字塔的按钮
func (f *Factory) NewResetButton() ecs.EntityID {
	node := scenegraph.NewMesh("resetButton", mgl64.Vec3{0.5, 0.5, 0.5}, buttonColor)
	node.Position = vec(f.Config.Grenades.ResetButton)
	node.Tag = components.PickResetButton
	node.SetShadows(true, true)

	id := f.spawnVisual(components.KindButton, node)
	f.EM.AddComponent(id, &components.PickableComponent{Variant: components.PickResetButton})
	f.EM.AddComponent(id, &components.SpinComponent{RatePerFrame: config.PickableSpinPerFrame})
	return id
}
