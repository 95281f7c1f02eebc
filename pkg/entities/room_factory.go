package entities

import (
	"image/color"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// NewRoom 创建地板和两面墙
// 地板顶面在 y=0；后墙在 z=-51，侧墙在 x=51
func (f *Factory) NewRoom() []ecs.EntityID {
	floorHalf := mgl64.Vec3{50, 1, 50}
	floor := scenegraph.NewMesh("floor", floorHalf, white)
	floor.SetShadows(false, true)
	floorID := f.spawnBody(components.KindStatic, physics.BodyDesc{
		Shape:    physics.Box(floorHalf),
		Position: mgl64.Vec3{0, -1, 0},
		Material: f.Materials.Floor,
		Group:    physics.GroupObjects,
		Mask:     physics.MaskObjects,
	}, floor)

	backHalf := mgl64.Vec3{50, 10, 1}
	back := scenegraph.NewMesh("wall", backHalf, white)
	back.SetShadows(false, true)
	backID := f.spawnBody(components.KindStatic, physics.BodyDesc{
		Shape:    physics.Box(backHalf),
		Position: mgl64.Vec3{0, 10, -51},
		Material: f.Materials.Wall,
		Group:    physics.GroupObjects,
		Mask:     physics.MaskObjects,
	}, back)

	sideHalf := mgl64.Vec3{1, 10, 50}
	side := scenegraph.NewMesh("wall", sideHalf, white)
	side.SetShadows(false, true)
	sideID := f.spawnBody(components.KindStatic, physics.BodyDesc{
		Shape:    physics.Box(sideHalf),
		Position: mgl64.Vec3{51, 10, 0},
		Material: f.Materials.Wall,
		Group:    physics.GroupObjects,
		Mask:     physics.MaskObjects,
	}, side)

	return []ecs.EntityID{floorID, backID, sideID}
}
