package systems

import (
	"testing"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"
)

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// assertSynced 每个已就绪视觉节点的变换都等于其刚体变换
func assertSynced(t fataler, a *testArena) {
	t.Helper()
	for _, id := range ecs.GetEntitiesWith2[*components.PhysicsBodyComponent, *components.VisualComponent](a.em) {
		visual, _ := ecs.GetComponent[*components.VisualComponent](a.em, id)
		if !visual.Ready() {
			continue
		}
		node := a.graph.Node(visual.Node)
		body := a.bodyOf(id)
		if node.Position != body.Position || node.Quaternion != body.Quaternion {
			t.Fatalf("entity %d out of sync: node %v/%v body %v/%v", id, node.Position, node.Quaternion, body.Position, body.Quaternion)
		}
	}
}

func TestSyncCopiesTransforms(t *testing.T) {
	a := newTestArena(t, 0)
	a.factory.NewRoom()
	a.factory.NewGrenadePyramid()
	a.factory.NewEnemy()
	a.loader.Flush()

	for i := 0; i < 30; i++ {
		a.world.Step(config.PhysicsTimeStep())
		a.sync.Update()
		assertSynced(t, a)
	}
}

func TestSyncSkipsPendingVisual(t *testing.T) {
	a := newTestArena(t, 0)
	a.factory.NewEnemy()
	if n := a.sync.Update(); n != 0 {
		t.Errorf("enemy without a model should not sync, synced %d", n)
	}
	a.loader.Flush()
	if n := a.sync.Update(); n != 1 {
		t.Errorf("Expected 1 synced entity after load, got %d", n)
	}
}

func TestRewardClearsWhenGemFalls(t *testing.T) {
	a := newTestArena(t, 0)
	a.factory.NewRoom()
	gem := a.factory.NewGem(mgl64.Vec3{0, 3, 0}, 1, 0, true)
	a.hud.SetReward("rare bullets")

	// 上升阶段不清除
	a.world.Step(config.PhysicsTimeStep())
	a.sync.Update()
	if !a.hud.RewardActive {
		t.Fatal("reward should stay while the gem is in the air")
	}

	body := a.bodyOf(gem)
	body.Position = mgl64.Vec3{0, 0.4, 0}
	body.Velocity = mgl64.Vec3{0, -1, 0}
	a.sync.Update()
	if a.hud.RewardActive {
		t.Error("reward should clear once the gem drops below 0.5")
	}
	g, _ := ecs.GetComponent[*components.GemComponent](a.em, gem)
	if g.Reward {
		t.Error("gem should no longer be the reward gem")
	}
}

// 任意步数、任意发射序列后同步不变量都成立
func TestSyncInvariantProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := newTestArena(t, 0)
		a.factory.NewRoom()
		a.factory.NewObstacle(0, mgl64.Vec3{-10, 0, 0}, 4, true)
		a.loader.Flush()

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(rt, "fire") {
				a.camera().Yaw = rapid.Float64Range(-3, 3).Draw(rt, "yaw")
				a.shooting.Fire()
			}
			a.obstacles.Update(float64(i) * 11)
			a.world.Step(config.PhysicsTimeStep())
			a.sync.Update()
			assertSynced(rt, a)
		}
	})
}
