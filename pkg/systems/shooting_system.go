package systems

import (
	"log"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/entities"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/decker502/gunroom/pkg/telemetry"
)

// ShootingSystem 处理开火与换弹
// 换弹是一个显式计时器：请求后立即显示提示，ReloadDelay 秒后清空弹匣；
// 计时中的重复请求会被合并，不会重复完成
type ShootingSystem struct {
	em       *ecs.EntityManager
	factory  *entities.Factory
	hud      hud.Sink
	hooks    telemetry.Hooks
	playerID ecs.EntityID
}

// NewShootingSystem 创建射击系统
func NewShootingSystem(em *ecs.EntityManager, factory *entities.Factory, sink hud.Sink, hooks telemetry.Hooks, playerID ecs.EntityID) *ShootingSystem {
	if hooks == nil {
		hooks = telemetry.Nop{}
	}
	return &ShootingSystem{
		em:       em,
		factory:  factory,
		hud:      sink,
		hooks:    hooks,
		playerID: playerID,
	}
}

// Fire 从摄像机位置沿视线发射一颗子弹
// 弹匣已满时什么也不做，返回 false
func (s *ShootingSystem) Fire() bool {
	mag, ok := ecs.GetComponent[*components.MagazineComponent](s.em, s.playerID)
	if !ok {
		return false
	}
	if mag.Full() {
		s.hooks.DryFire()
		log.Printf("[ShootingSystem] Magazine full (%d/%d), reload first", len(mag.Bullets), mag.Capacity)
		return false
	}
	camera, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.playerID)
	if !ok {
		return false
	}
	fast := 0.0
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID); ok {
		fast = player.Fast
	}

	profile, size := s.selectedProfile()
	speed := config.BulletBaseSpeed + fast
	bullet := s.factory.NewBullet(camera.Position, camera.Forward(), speed, profile, mag.BulletColor)
	mag.Bullets = append(mag.Bullets, bullet)

	s.hud.SetAmmo(mag.Remaining())
	s.hooks.ShotFired(size)
	return true
}

// selectedProfile 当前选中枪的子弹参数，没有选中时用默认参数
func (s *ShootingSystem) selectedProfile() (components.BulletProfile, string) {
	for _, id := range ecs.GetEntitiesWith1[*components.WeaponComponent](s.em) {
		w, _ := ecs.GetComponent[*components.WeaponComponent](s.em, id)
		if w.Selected {
			return w.Bullet, w.Size.String()
		}
	}
	return entities.DefaultBulletProfile, "default"
}

// RequestReload 请求换弹，立即显示换弹提示
// 已在换弹中时合并请求，返回 false
func (s *ShootingSystem) RequestReload() bool {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.playerID)
	if !ok {
		return false
	}
	s.hud.SetReloading(true)
	if !timer.Start() {
		log.Printf("[ShootingSystem] Reload already pending, request merged")
		return false
	}
	return true
}

// ReloadNow 立即完成换弹并取消等待中的计时器
func (s *ShootingSystem) ReloadNow() {
	if timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.playerID); ok {
		timer.Cancel()
	}
	s.completeReload()
}

// Reloading 是否有换弹在等待
func (s *ShootingSystem) Reloading() bool {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.playerID)
	return ok && timer.IsActive
}

// Update 推进换弹计时器
func (s *ShootingSystem) Update(deltaTime float64) {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.playerID)
	if !ok {
		return
	}
	if timer.Advance(deltaTime) {
		s.completeReload()
	}
}

// completeReload 移除弹匣里每颗子弹的刚体和视觉节点
func (s *ShootingSystem) completeReload() {
	mag, ok := ecs.GetComponent[*components.MagazineComponent](s.em, s.playerID)
	if !ok {
		return
	}
	for _, id := range mag.Bullets {
		s.factory.Despawn(id)
	}
	cleared := len(mag.Bullets)
	mag.Bullets = mag.Bullets[:0]

	s.hud.SetReloading(false)
	s.hud.SetAmmo(mag.Capacity)
	s.hooks.Reloaded()
	log.Printf("[ShootingSystem] Reloaded, cleared %d bullets", cleared)
}
