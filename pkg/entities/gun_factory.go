package entities

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	pedestalColor = color.RGBA{R: 0xff, G: 0xc0, B: 0x00, A: 0xff}
	priceTagColor = color.RGBA{R: 0x1f, G: 0xf2, B: 0xff, A: 0xff}
)

// NewGuns 在展示区创建全部枪械、展示台以及未拥有枪械的锁和价格牌
// owned 为已拥有的尺寸集合；selected 为当前选中的尺寸
func (f *Factory) NewGuns(owned map[components.WeaponSize]bool, selected components.WeaponSize) []ecs.EntityID {
	var ids []ecs.EntityID
	for _, wc := range f.Config.Weapons {
		size := components.ParseWeaponSize(wc.Size)
		isOwned := owned[size] || wc.Price == 0
		ids = append(ids, f.NewGun(wc, isOwned, size == selected && isOwned))
	}
	return ids
}

// NewGun 创建一把枪及其展示台
func (f *Factory) NewGun(wc config.WeaponConfig, owned, selected bool) ecs.EntityID {
	pos := vec(wc.Position)
	size := components.ParseWeaponSize(wc.Size)

	pedestal := scenegraph.NewMesh("gunBox", mgl64.Vec3{1, 0.15, 1}, pedestalColor)
	pedestal.Position = mgl64.Vec3{pos.X(), 0.2, pos.Z()}
	pedestal.SetShadows(true, true)
	f.spawnVisual(components.KindStatic, pedestal)

	weapon := &components.WeaponComponent{
		Size:     size,
		Price:    wc.Price,
		Owned:    owned,
		Selected: selected,
		BaseY:    pos.Y(),
		Bullet: components.BulletProfile{
			Radius: wc.BulletRadius,
			Mass:   wc.BulletMass,
		},
		Silhouette: wc.Silhouette,
	}

	id := f.spawnVisual(components.KindGun, nil)
	f.EM.AddComponent(id, weapon)
	f.EM.AddComponent(id, &components.PickableComponent{Variant: components.PickableForWeapon(size)})
	f.EM.AddComponent(id, &components.SpinComponent{RatePerFrame: config.PickableSpinPerFrame})

	if !owned {
		weapon.Lock = f.newLock(pos)
		weapon.PriceTag = f.newPriceTag(pos, wc.Price)
	}

	variant := components.PickableForWeapon(size)
	f.attachModel(id, wc.Model, func(n *scenegraph.Node) {
		n.Name = wc.ID
		n.Tag = variant
		n.Scale = mgl64.Vec3{3, 3, 3}
		n.Position = mgl64.Vec3{pos.X(), GunHeight(weapon), pos.Z()}
	})
	return id
}

// GunHeight 枪的显示高度：选中时抬高
func GunHeight(w *components.WeaponComponent) float64 {
	if w.Selected {
		return w.BaseY + config.SelectedRaise
	}
	return w.BaseY
}

func (f *Factory) newLock(gunPos mgl64.Vec3) ecs.EntityID {
	id := f.spawnVisual(components.KindDecoration, nil)
	f.attachModel(id, f.Config.Models.Lock, func(n *scenegraph.Node) {
		n.Name = "lock"
		n.Position = mgl64.Vec3{gunPos.X(), 4, gunPos.Z()}
		n.Scale = mgl64.Vec3{3, 3, 3}
		n.Quaternion = mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})
	})
	return id
}

func (f *Factory) newPriceTag(gunPos mgl64.Vec3, price int) ecs.EntityID {
	tag := scenegraph.NewMesh(fmt.Sprintf("coins%d", price), mgl64.Vec3{0.05, 1, 2}, priceTagColor)
	tag.Position = mgl64.Vec3{gunPos.X() - 1.5, 5, gunPos.Z()}
	tag.SetShadows(true, true)
	return f.spawnVisual(components.KindDecoration, tag)
}
