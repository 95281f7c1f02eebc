package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/entities"
	"github.com/decker502/gunroom/pkg/game"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/decker502/gunroom/pkg/telemetry"
	"github.com/go-gl/mathgl/mgl64"
)

// Picker 沿射线查询可拾取节点（scenegraph.Graph 实现了它）
type Picker interface {
	Raycast(origin, dir mgl64.Vec3, pickables []scenegraph.NodeID) (scenegraph.Hit, bool)
}

// Outcome 一次点击的结果
type Outcome int

const (
	OutcomeNone          Outcome = iota // 射线未命中或目标无需处理
	OutcomeSelected                     // 选中已拥有的枪
	OutcomePurchased                    // 购买并选中枪
	OutcomeReset                        // 重建手雷金字塔
	OutcomeCrateOpened                  // 开启宝箱
	OutcomeRejected                     // 金币不足
	OutcomeOutOfRange                   // 距离太远
	OutcomeAlreadyChosen                // 已是当前选中的枪
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomePurchased:
		return "purchased"
	case OutcomeReset:
		return "reset"
	case OutcomeCrateOpened:
		return "crate-opened"
	case OutcomeRejected:
		return "rejected"
	case OutcomeOutOfRange:
		return "out-of-range"
	case OutcomeAlreadyChosen:
		return "already-selected"
	}
	return "none"
}

// InteractionSystem 点击交互：选枪、买枪、重置手雷、开宝箱
//
// 距离判定使用独立的轴向差：|dx| <= R && |dz| <= R（不是欧氏距离），
// 枪 R=15，宝箱 R=20，重置按钮不限距离
type InteractionSystem struct {
	em       *ecs.EntityManager
	picker   Picker
	factory  *entities.Factory
	state    *game.GameState
	hud      hud.Sink
	hooks    telemetry.Hooks
	shooting *ShootingSystem
	playerID ecs.EntityID
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(em *ecs.EntityManager, picker Picker, factory *entities.Factory, state *game.GameState, sink hud.Sink, hooks telemetry.Hooks, shooting *ShootingSystem, playerID ecs.EntityID) *InteractionSystem {
	if hooks == nil {
		hooks = telemetry.Nop{}
	}
	return &InteractionSystem{
		em:       em,
		picker:   picker,
		factory:  factory,
		state:    state,
		hud:      sink,
		hooks:    hooks,
		shooting: shooting,
		playerID: playerID,
	}
}

// Click 从摄像机沿视线发出射线，处理命中的最近可拾取物
func (s *InteractionSystem) Click() Outcome {
	camera, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.playerID)
	if !ok {
		return OutcomeNone
	}
	// 每次点击都把未选中的枪放回底座高度
	defer s.layoutGuns()

	hit, ok := s.picker.Raycast(camera.Position, camera.Forward(), entities.PickableNodes(s.em))
	if !ok {
		return OutcomeNone
	}
	root := hit.Root()
	id, ok := entities.EntityForNode(s.em, root.ID)
	if !ok {
		return OutcomeNone
	}
	variant, ok := root.Tag.(components.Pickable)
	if !ok {
		p, has := ecs.GetComponent[*components.PickableComponent](s.em, id)
		if !has {
			return OutcomeNone
		}
		variant = p.Variant
	}
	return s.Activate(id, variant, root.Position)
}

// Activate 按种类分派交互；target 为目标节点位置，用于距离判定
func (s *InteractionSystem) Activate(id ecs.EntityID, variant components.Pickable, target mgl64.Vec3) Outcome {
	switch {
	case variant.IsGun():
		if !s.inRange(target, config.GunInteractionRange) {
			s.hooks.PurchaseRejected(variant.String(), telemetry.ReasonOutOfRange)
			return OutcomeOutOfRange
		}
		return s.activateGun(id, variant)
	case variant.IsCrate():
		if !s.inRange(target, config.CrateInteractionRange) {
			s.hooks.PurchaseRejected(variant.String(), telemetry.ReasonOutOfRange)
			return OutcomeOutOfRange
		}
		return s.openCrate(id, variant)
	case variant == components.PickResetButton:
		s.ResetGrenades()
		return OutcomeReset
	}
	return OutcomeNone
}

// inRange 轴向距离判定
func (s *InteractionSystem) inRange(target mgl64.Vec3, r float64) bool {
	camera, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.playerID)
	if !ok {
		return false
	}
	dx := math.Abs(camera.Position.X() - target.X())
	dz := math.Abs(camera.Position.Z() - target.Z())
	return dx <= r && dz <= r
}

func (s *InteractionSystem) activateGun(id ecs.EntityID, variant components.Pickable) Outcome {
	w, ok := ecs.GetComponent[*components.WeaponComponent](s.em, id)
	if !ok {
		return OutcomeNone
	}
	if w.Selected {
		return OutcomeAlreadyChosen
	}

	outcome := OutcomeSelected
	if !w.Owned {
		if !s.state.SpendCoins(w.Price) {
			log.Printf("[InteractionSystem] Cannot afford %s (%d coins, need %d)", variant, s.state.Coins(), w.Price)
			s.hooks.PurchaseRejected(variant.String(), telemetry.ReasonInsufficientFunds)
			return OutcomeRejected
		}
		w.Owned = true
		s.factory.Despawn(w.Lock)
		s.factory.Despawn(w.PriceTag)
		w.Lock, w.PriceTag = 0, 0
		s.hooks.Purchased(variant.String(), w.Price)
		log.Printf("[InteractionSystem] Bought %s for %d coins", variant, w.Price)
		outcome = OutcomePurchased
	}

	for _, other := range ecs.GetEntitiesWith1[*components.WeaponComponent](s.em) {
		ow, _ := ecs.GetComponent[*components.WeaponComponent](s.em, other)
		ow.Selected = other == id
	}
	s.hud.SetWeapon(hud.Silhouette(w.Silhouette))
	return outcome
}

// layoutGuns 选中的枪抬高，其余回到底座高度
func (s *InteractionSystem) layoutGuns() {
	for _, id := range ecs.GetEntitiesWith2[*components.WeaponComponent, *components.VisualComponent](s.em) {
		w, _ := ecs.GetComponent[*components.WeaponComponent](s.em, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.em, id)
		if node := s.factory.Scene.Node(visual.Node); node != nil {
			node.Position[1] = entities.GunHeight(w)
		}
	}
}

// ResetGrenades 清除并重建手雷金字塔
func (s *InteractionSystem) ResetGrenades() {
	removed := s.factory.DespawnKind(components.KindGrenade)
	built := len(s.factory.NewGrenadePyramid())
	log.Printf("[InteractionSystem] Grenade pyramid reset: removed %d, built %d", removed, built)
}

func (s *InteractionSystem) openCrate(id ecs.EntityID, variant components.Pickable) Outcome {
	crate, ok := ecs.GetComponent[*components.CrateComponent](s.em, id)
	if !ok {
		return OutcomeNone
	}
	if !s.state.SpendCoins(crate.Price) {
		log.Printf("[InteractionSystem] Cannot afford %s (%d coins, need %d)", variant, s.state.Coins(), crate.Price)
		s.hooks.PurchaseRejected(variant.String(), telemetry.ReasonInsufficientFunds)
		return OutcomeRejected
	}
	s.hooks.Purchased(variant.String(), crate.Price)

	rng := s.factory.Rand
	tier := entities.CrateTier(rng.Float64())
	payout := 0
	var text string
	switch variant {
	case components.PickCrate1:
		if mag, ok := ecs.GetComponent[*components.MagazineComponent](s.em, s.playerID); ok {
			mag.BulletColor = entities.TierColors[tier]
		}
		text = fmt.Sprintf("%s bullets", entities.TierNames[tier])
	case components.PickCrate2:
		if mag, ok := ecs.GetComponent[*components.MagazineComponent](s.em, s.playerID); ok {
			mag.Capacity++
			text = fmt.Sprintf("magazine %d", mag.Capacity)
		}
		if s.shooting != nil {
			s.shooting.ReloadNow()
		}
	case components.PickCrate5:
		win := int(math.Floor(rng.Float64() * 5))
		payout = entities.CratePayout(tier, win)
		s.state.AddCoins(payout)
		text = fmt.Sprintf("+%d coins", payout)
	}
	s.hooks.CrateRolled(variant.String(), tier, payout)

	// 新宝石接管奖励文字
	for _, gid := range ecs.GetEntitiesWith1[*components.GemComponent](s.em) {
		g, _ := ecs.GetComponent[*components.GemComponent](s.em, gid)
		g.Reward = false
	}
	origin := mgl64.Vec3{}
	if visual, ok := ecs.GetComponent[*components.VisualComponent](s.em, id); ok {
		if node := s.factory.Scene.Node(visual.Node); node != nil {
			origin = node.Position
		}
	}
	s.factory.NewGem(origin.Add(mgl64.Vec3{0, 3, 0}), tier, payout, true)
	s.hud.SetReward(text)
	log.Printf("[InteractionSystem] %s rolled tier %d (%s)", variant, tier, text)
	return OutcomeCrateOpened
}
