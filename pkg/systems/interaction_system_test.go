package systems

import (
	"math"
	"testing"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/entities"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/go-gl/mathgl/mgl64"
)

// newShopArena 带枪械展示区、宝箱和重置按钮的竞技场，模型已加载完毕
func newShopArena(t *testing.T, coins int) *testArena {
	t.Helper()
	a := newTestArena(t, coins)
	a.factory.NewGuns(nil, components.WeaponSmall)
	a.factory.NewCrates()
	a.factory.NewResetButton()
	a.loader.Flush()
	return a
}

func (a *testArena) nodeY(id ecs.EntityID) float64 {
	v, _ := ecs.GetComponent[*components.VisualComponent](a.em, id)
	return a.graph.Node(v.Node).Position.Y()
}

func TestBuyBigGunWithExactCoins(t *testing.T) {
	a := newShopArena(t, 20)
	gunID, big := a.weapon(components.WeaponBig)
	lock, tag := big.Lock, big.PriceTag
	if lock == 0 || tag == 0 {
		t.Fatal("unowned big gun should have a lock and a price tag")
	}

	a.placePlayer(mgl64.Vec3{40, 1, -15}, math.Pi)
	if got := a.interaction.Click(); got != OutcomePurchased {
		t.Fatalf("Expected %v, got %v", OutcomePurchased, got)
	}

	if a.state.Coins() != 0 {
		t.Errorf("Expected 0 coins, got %d", a.state.Coins())
	}
	if a.hud.Coins != 0 {
		t.Errorf("HUD coins = %d, want 0", a.hud.Coins)
	}
	if !big.Owned || !big.Selected {
		t.Errorf("big gun owned=%v selected=%v, want both true", big.Owned, big.Selected)
	}
	if a.em.Exists(lock) || a.em.Exists(tag) {
		t.Error("lock and price tag should be removed after purchase")
	}
	if a.hud.Weapon != hud.SilhouetteGrenade {
		t.Errorf("Expected weapon %q, got %q", hud.SilhouetteGrenade, a.hud.Weapon)
	}
	if y := a.nodeY(gunID); y != 3 {
		t.Errorf("selected gun should be raised to 3, got %v", y)
	}
	_, small := a.weapon(components.WeaponSmall)
	if small.Selected {
		t.Error("previous selection should be cleared")
	}
}

func TestCrateRejectedWithoutCoins(t *testing.T) {
	a := newShopArena(t, 4)
	a.placePlayer(mgl64.Vec3{32, 1, -20}, 0)

	if got := a.interaction.Click(); got != OutcomeRejected {
		t.Fatalf("Expected %v, got %v", OutcomeRejected, got)
	}
	if a.state.Coins() != 4 {
		t.Errorf("coins should stay 4, got %d", a.state.Coins())
	}
	if n := entities.CountKind(a.em, components.KindGem); n != 0 {
		t.Errorf("no gem should spawn, got %d", n)
	}
	if a.hud.RewardActive {
		t.Error("reward text should not appear")
	}
}

func TestCrateFiveAddsPayout(t *testing.T) {
	a := newShopArena(t, 5)
	a.placePlayer(mgl64.Vec3{32, 1, -20}, 0)

	if got := a.interaction.Click(); got != OutcomeCrateOpened {
		t.Fatalf("Expected %v, got %v", OutcomeCrateOpened, got)
	}
	gems := entities.EntitiesOfKind(a.em, components.KindGem)
	if len(gems) != 1 {
		t.Fatalf("Expected 1 gem, got %d", len(gems))
	}
	gem, _ := ecs.GetComponent[*components.GemComponent](a.em, gems[0])
	if a.state.Coins() != gem.Payout {
		t.Errorf("coins = %d, want payout %d", a.state.Coins(), gem.Payout)
	}
	if !gem.Reward || !a.hud.RewardActive {
		t.Error("new gem should carry the reward text")
	}
	if body := a.bodyOf(gems[0]); body.Position.Y() != 4 {
		t.Errorf("gem should spawn 3 above the crate, got y=%v", body.Position.Y())
	}
}

func TestCrateOneTintsBullets(t *testing.T) {
	a := newShopArena(t, 1)
	a.placePlayer(mgl64.Vec3{20, 1, -20}, 0)

	if got := a.interaction.Click(); got != OutcomeCrateOpened {
		t.Fatalf("Expected %v, got %v", OutcomeCrateOpened, got)
	}
	gem, _ := ecs.GetComponent[*components.GemComponent](a.em, entities.EntitiesOfKind(a.em, components.KindGem)[0])
	if a.magazine().BulletColor != entities.TierColors[gem.Tier] {
		t.Errorf("bullet colour %v, want tier colour %v", a.magazine().BulletColor, entities.TierColors[gem.Tier])
	}
}

func TestCrateTwoGrowsMagazineAndReloads(t *testing.T) {
	a := newShopArena(t, 2)
	a.shooting.Fire()
	a.shooting.RequestReload()
	a.placePlayer(mgl64.Vec3{26, 1, -20}, 0)

	if got := a.interaction.Click(); got != OutcomeCrateOpened {
		t.Fatalf("Expected %v, got %v", OutcomeCrateOpened, got)
	}
	mag := a.magazine()
	if mag.Capacity != 11 || len(mag.Bullets) != 0 {
		t.Errorf("capacity=%d bullets=%d, want 11 and 0", mag.Capacity, len(mag.Bullets))
	}
	if a.hud.Ammo != 11 || a.hud.Reloading {
		t.Errorf("HUD ammo=%d reloading=%v, want 11 and false", a.hud.Ammo, a.hud.Reloading)
	}
	if a.hud.Reward != "magazine 11" {
		t.Errorf("Expected reward %q, got %q", "magazine 11", a.hud.Reward)
	}
}

func TestNewCrateTakesOverReward(t *testing.T) {
	a := newShopArena(t, 10)
	a.placePlayer(mgl64.Vec3{32, 1, -20}, 0)
	a.interaction.Click()
	a.interaction.Click()

	rewards := 0
	for _, id := range entities.EntitiesOfKind(a.em, components.KindGem) {
		if g, _ := ecs.GetComponent[*components.GemComponent](a.em, id); g.Reward {
			rewards++
		}
	}
	if rewards != 1 {
		t.Errorf("Expected exactly 1 reward gem, got %d", rewards)
	}
}

func TestGunClicks(t *testing.T) {
	tests := []struct {
		name  string
		coins int
		pos   mgl64.Vec3
		yaw   float64
		want  Outcome
	}{
		{"already selected", 0, mgl64.Vec3{40, 3, 15}, 0, OutcomeAlreadyChosen},
		{"out of range", 100, mgl64.Vec3{40, 1, -25}, math.Pi, OutcomeOutOfRange},
		{"cannot afford", 19, mgl64.Vec3{40, 1, -15}, math.Pi, OutcomeRejected},
		{"miss", 100, mgl64.Vec3{0, 1, 0}, math.Pi / 2, OutcomeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newShopArena(t, tt.coins)
			a.placePlayer(tt.pos, tt.yaw)
			if got := a.interaction.Click(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if a.state.Coins() != tt.coins {
				t.Errorf("coins changed to %d", a.state.Coins())
			}
		})
	}
}

func TestSelectOwnedGunIsFree(t *testing.T) {
	a := newTestArena(t, 3)
	a.factory.NewGuns(map[components.WeaponSize]bool{components.WeaponMedium: true}, components.WeaponSmall)
	a.loader.Flush()
	a.placePlayer(mgl64.Vec3{40, 1, 10}, 0)

	id, medium := a.weapon(components.WeaponMedium)
	if got := a.interaction.Activate(id, components.PickMediumGun, mgl64.Vec3{40, 1, 0}); got != OutcomeSelected {
		t.Fatalf("Expected %v, got %v", OutcomeSelected, got)
	}
	if !medium.Selected || a.state.Coins() != 3 {
		t.Errorf("selected=%v coins=%d, want true and 3", medium.Selected, a.state.Coins())
	}
	if a.hud.Weapon != hud.SilhouetteRifle {
		t.Errorf("Expected weapon %q, got %q", hud.SilhouetteRifle, a.hud.Weapon)
	}
}

// 距离按轴判定：dx、dz 各自不超过 15 即可，即使欧氏距离约 19.8
func TestGunRangeUsesAxisDeltas(t *testing.T) {
	a := newTestArena(t, 0)
	a.factory.NewGuns(map[components.WeaponSize]bool{components.WeaponMedium: true}, components.WeaponSmall)
	a.loader.Flush()
	id, _ := a.weapon(components.WeaponMedium)

	a.placePlayer(mgl64.Vec3{26, 1, 14}, 0)
	if got := a.interaction.Activate(id, components.PickMediumGun, mgl64.Vec3{40, 1, 0}); got != OutcomeSelected {
		t.Fatalf("diagonal 14/14: expected %v, got %v", OutcomeSelected, got)
	}

	a.placePlayer(mgl64.Vec3{40, 1, 15.5}, 0)
	if got := a.interaction.Activate(id, components.PickMediumGun, mgl64.Vec3{40, 1, 0}); got != OutcomeOutOfRange {
		t.Errorf("dz 15.5: expected %v, got %v", OutcomeOutOfRange, got)
	}
}

func TestResetButtonRebuildsPyramidFromAnywhere(t *testing.T) {
	a := newShopArena(t, 0)
	old := a.factory.NewGrenadePyramid()
	a.bodyOf(old[0]).Position = mgl64.Vec3{0, -5, 0}

	a.placePlayer(mgl64.Vec3{10, 1, 45}, 0)
	if got := a.interaction.Click(); got != OutcomeReset {
		t.Fatalf("Expected %v, got %v", OutcomeReset, got)
	}
	if n := entities.CountKind(a.em, components.KindGrenade); n != len(old) {
		t.Errorf("Expected %d grenades, got %d", len(old), n)
	}
	for _, id := range old {
		if a.em.Exists(id) {
			t.Fatalf("old grenade %d survived the reset", id)
		}
	}
}

func TestSpinAdvancesEveryFrame(t *testing.T) {
	a := newShopArena(t, 0)
	id, _ := entities.EntityForPickable(a.em, components.PickCrate1)
	for i := 0; i < 100; i++ {
		a.spin.Update()
	}
	spin, _ := ecs.GetComponent[*components.SpinComponent](a.em, id)
	if math.Abs(spin.Angle-1) > 1e-9 {
		t.Errorf("Expected angle 1, got %v", spin.Angle)
	}
	v, _ := ecs.GetComponent[*components.VisualComponent](a.em, id)
	want := mgl64.QuatRotate(spin.Angle, mgl64.Vec3{0, 1, 0})
	if !a.graph.Node(v.Node).Quaternion.ApproxEqual(want) {
		t.Error("node rotation should follow the spin angle")
	}
}
