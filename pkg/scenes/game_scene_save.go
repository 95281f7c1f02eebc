package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/game"
)

// onEnemyKilled 敌人死亡后记录并保存档案
func (s *GameScene) onEnemyKilled() {
	if s.profiles == nil {
		return
	}
	s.profiles.Profile().EnemiesKilled++
	if err := s.saveProfile(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save profile after kill: %v", err)
	}
}

// SaveOnExit 实现 game.Saveable
func (s *GameScene) SaveOnExit() bool {
	if s.profiles == nil {
		return true
	}
	if err := s.saveProfile(); err != nil {
		log.Printf("[GameScene] Failed to save profile on exit: %v", err)
		return false
	}
	log.Printf("[GameScene] Profile saved on exit")
	return true
}

func (s *GameScene) saveProfile() error {
	s.writeProfile(s.profiles.Profile())
	return s.profiles.Save()
}

// writeProfile 把当前金币、枪械和弹匣写回档案
func (s *GameScene) writeProfile(p *game.Profile) {
	p.Coins = s.state.Coins()

	p.OwnedGuns = p.OwnedGuns[:0]
	for _, id := range ecs.GetEntitiesWith1[*components.WeaponComponent](s.em) {
		w, _ := ecs.GetComponent[*components.WeaponComponent](s.em, id)
		if w.Owned {
			p.OwnedGuns = append(p.OwnedGuns, w.Size.String())
		}
		if w.Selected {
			p.SelectedGun = w.Size.String()
		}
	}

	if mag, ok := ecs.GetComponent[*components.MagazineComponent](s.em, s.player); ok {
		p.MagazineCapacity = mag.Capacity
		c := mag.BulletColor
		p.BulletColor = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
}

var _ game.Saveable = (*GameScene)(nil)
