package scenes

import (
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/ecs"
)

// Snapshot 每帧发布的只读状态，供调试服务器在其他 goroutine 读取
type Snapshot struct {
	Frame     int            `json:"frame"`
	Coins     int            `json:"coins"`
	Ammo      int            `json:"ammo"`
	Capacity  int            `json:"capacity"`
	Reloading bool           `json:"reloading"`
	Weapon    string         `json:"weapon"`
	Reward    string         `json:"reward,omitempty"`
	Paused    bool           `json:"paused"`
	Entities  map[string]int `json:"entities"`
}

// reportedKinds 上报存活数量的实体类别
var reportedKinds = []components.Kind{
	components.KindBullet,
	components.KindGrenade,
	components.KindGem,
	components.KindObstacle,
	components.KindEnemy,
}

func (s *GameScene) publishSnapshot() {
	counts := make(map[components.Kind]int)
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](s.em) {
		k, _ := ecs.GetComponent[*components.KindComponent](s.em, id)
		counts[k.Kind]++
	}

	snap := &Snapshot{
		Frame:     s.frames,
		Coins:     s.state.Coins(),
		Ammo:      s.hud.Ammo,
		Reloading: s.hud.Reloading,
		Weapon:    string(s.hud.Weapon),
		Paused:    s.hud.Paused,
		Entities:  make(map[string]int, len(reportedKinds)),
	}
	if s.hud.RewardActive {
		snap.Reward = s.hud.Reward
	}
	if mag, ok := ecs.GetComponent[*components.MagazineComponent](s.em, s.player); ok {
		snap.Capacity = mag.Capacity
	}
	for _, kind := range reportedKinds {
		snap.Entities[kind.String()] = counts[kind]
		s.hooks.EntitiesLive(kind.String(), counts[kind])
	}
	s.snapshot.Store(snap)
}

// Snapshot 返回最近一帧的状态，可在任意 goroutine 调用
func (s *GameScene) Snapshot() Snapshot {
	if snap := s.snapshot.Load(); snap != nil {
		return *snap
	}
	return Snapshot{}
}
