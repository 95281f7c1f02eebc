package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/gunroom/pkg/assets"
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/decker502/gunroom/pkg/systems"
	"github.com/go-gl/mathgl/mgl64"
)

// loadout 开局时玩家的状态：来自已保存档案或配置
type loadout struct {
	coins       int
	capacity    int
	bulletColor color.RGBA
	owned       map[components.WeaponSize]bool
	selected    components.WeaponSize
}

func (s *GameScene) startingLoadout() loadout {
	l := loadout{
		coins:    s.cfg.Player.StartingCoins,
		capacity: s.cfg.Player.MagazineSize,
		selected: components.WeaponSmall,
	}
	colour := s.cfg.Player.BulletColor

	if s.profiles != nil && s.profiles.Restored() {
		p := s.profiles.Profile()
		l.coins = p.Coins
		l.capacity = p.MagazineCapacity
		l.owned = make(map[components.WeaponSize]bool)
		for _, g := range p.OwnedGuns {
			l.owned[components.ParseWeaponSize(g)] = true
		}
		l.selected = components.ParseWeaponSize(p.SelectedGun)
		if p.BulletColor != "" {
			colour = p.BulletColor
		}
		log.Printf("[GameScene] Restored profile %s", p.ID)
	}

	if w, ok := s.cfg.Weapon(l.selected.String()); ok && w.Price > 0 && !l.owned[l.selected] {
		l.selected = components.WeaponSmall
	}

	c, err := assets.ParseColor(colour)
	if err != nil {
		log.Printf("[GameScene] Warning: bad bullet colour %q: %v", colour, err)
		c, _ = assets.ParseColor("#ffc000")
	}
	l.bulletColor = c
	return l
}

// buildArena 生成房间、障碍物、敌人、枪械展示区、宝箱、手雷金字塔和玩家
func (s *GameScene) buildArena(l loadout) {
	f := s.factory
	f.NewRoom()
	f.NewObstacleField()
	f.NewEnemy()
	f.NewGuns(l.owned, l.selected)
	f.NewCrates()
	f.NewGrenadePyramid()
	f.NewResetButton()
	s.player = f.NewPlayer(l.capacity, l.bulletColor)

	if w, ok := s.cfg.Weapon(l.selected.String()); ok {
		s.hud.SetWeapon(hud.Silhouette(w.Silhouette))
	}
}

func (s *GameScene) buildSystems() {
	spawn := mgl64.Vec3(s.cfg.Player.SpawnPosition)

	s.control = systems.NewPlayerControlSystem(s.em, s.world, s.keys, s.bindings, s.player, spawn)
	s.shooting = systems.NewShootingSystem(s.em, s.factory, s.hud, s.hooks, s.player)
	s.interaction = systems.NewInteractionSystem(s.em, s.graph, s.factory, s.state, s.hud, s.hooks, s.shooting, s.player)
	s.obstacles = systems.NewObstacleSystem(s.em, s.world)
	s.sync = systems.NewSyncSystem(s.em, s.world, s.graph, s.hud)
	s.killPlane = systems.NewKillPlaneSystem(s.em, s.factory, s.state, s.hud, s.hooks, s.control, spawn)
	s.killPlane.OnEnemyKilled = s.onEnemyKilled
	s.spin = systems.NewSpinSystem(s.em, s.graph)
}
