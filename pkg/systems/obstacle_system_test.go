package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// 序号为 3 的障碍物在模拟时间 t 的偏移为 sin(t*0.001 + 1.5) * 4
func TestObstacleIndexThreeOffset(t *testing.T) {
	a := newTestArena(t, 0)
	const z0 = 12.0
	id := a.factory.NewObstacle(3, mgl64.Vec3{-10, 0, z0}, 5, true)

	for _, nowMs := range []float64{0, 16.7, 1000, 12345.6} {
		a.obstacles.Update(nowMs)
		got := a.bodyOf(id).Position.Z() - z0
		want := math.Sin(nowMs*0.001+1.5) * 4
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("t=%v: offset = %v, want %v", nowMs, got, want)
		}
	}
}

func TestStaticObstacleDoesNotMove(t *testing.T) {
	a := newTestArena(t, 0)
	id := a.factory.NewObstacle(0, mgl64.Vec3{-10, 0, 6}, 5, false)
	a.obstacles.Update(5000)
	if a.bodyOf(id).Position != (mgl64.Vec3{-10, 0, 6}) {
		t.Error("non-oscillating obstacle should stay put")
	}
}

func TestOscillationOffsetBounds(t *testing.T) {
	for ms := 0.0; ms < 10000; ms += 137 {
		if v := OscillationOffset(ms, 0.5, 4); math.Abs(v) > 4 {
			t.Fatalf("offset %v exceeds amplitude at %v", v, ms)
		}
	}
}
