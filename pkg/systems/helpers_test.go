package systems

import (
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/decker502/gunroom/pkg/assets"
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/entities"
	"github.com/decker502/gunroom/pkg/game"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/decker502/gunroom/pkg/input"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

const modelParts = `
parts:
  - name: body
    half: [0.5, 0.5, 0.5]
    color: "#303030"
`

func testModels() fstest.MapFS {
	fs := fstest.MapFS{}
	for _, name := range []string{"bigGun", "mediumGun", "littleGun", "lock", "botDrone"} {
		fs["models/"+name+".yaml"] = &fstest.MapFile{Data: []byte("name: " + name + modelParts)}
	}
	return fs
}

// testArena 组装好全部系统的最小竞技场（不含 ebiten）
type testArena struct {
	em      *ecs.EntityManager
	world   *physics.SimpleWorld
	graph   *scenegraph.Graph
	loader  *assets.Loader
	factory *entities.Factory
	state   *game.GameState
	hud     *hud.State
	keys    *input.State
	player  ecs.EntityID

	control     *PlayerControlSystem
	shooting    *ShootingSystem
	interaction *InteractionSystem
	obstacles   *ObstacleSystem
	sync        *SyncSystem
	killPlane   *KillPlaneSystem
	spin        *SpinSystem
}

func newTestArena(t testing.TB, coins int) *testArena {
	t.Helper()
	cfg := config.DefaultGameConfig()
	a := &testArena{
		em:    ecs.NewEntityManager(),
		world: physics.NewSimpleWorld(mgl64.Vec3{0, config.Gravity, 0}),
		graph: scenegraph.NewGraph(),
		state: game.NewGameState(coins),
		hud:   hud.NewState(),
		keys:  input.NewState(),
	}
	a.loader = assets.NewLoader(testModels(), nil)
	a.factory = entities.NewFactory(a.em, a.world, a.graph, a.loader, cfg, rand.New(rand.NewPCG(42, 42)))
	a.state.OnCoinsChanged = a.hud.SetCoins

	a.player = a.factory.NewPlayer(cfg.Player.MagazineSize, entities.TierColors[0])
	a.hud.SetAmmo(cfg.Player.MagazineSize)
	a.control = NewPlayerControlSystem(a.em, a.world, a.keys, input.DefaultBindings(), a.player, vec3(cfg.Player.SpawnPosition))
	a.shooting = NewShootingSystem(a.em, a.factory, a.hud, nil, a.player)
	a.interaction = NewInteractionSystem(a.em, a.graph, a.factory, a.state, a.hud, nil, a.shooting, a.player)
	a.obstacles = NewObstacleSystem(a.em, a.world)
	a.sync = NewSyncSystem(a.em, a.world, a.graph, a.hud)
	a.killPlane = NewKillPlaneSystem(a.em, a.factory, a.state, a.hud, nil, a.control, vec3(cfg.Player.SpawnPosition))
	a.spin = NewSpinSystem(a.em, a.graph)
	return a
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// placePlayer 把玩家刚体和摄像机放到 pos，朝向 yaw
func (a *testArena) placePlayer(pos mgl64.Vec3, yaw float64) {
	body := a.playerBody()
	body.Position = pos
	body.Velocity = mgl64.Vec3{}
	cam := a.camera()
	cam.Position = pos
	cam.Yaw = yaw
	cam.Pitch = 0
}

func (a *testArena) playerBody() *physics.Body {
	b, _ := ecs.GetComponent[*components.PhysicsBodyComponent](a.em, a.player)
	return a.world.Body(b.Body)
}

func (a *testArena) camera() *components.CameraComponent {
	c, _ := ecs.GetComponent[*components.CameraComponent](a.em, a.player)
	return c
}

func (a *testArena) magazine() *components.MagazineComponent {
	m, _ := ecs.GetComponent[*components.MagazineComponent](a.em, a.player)
	return m
}

func (a *testArena) playerComp() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](a.em, a.player)
	return p
}

func (a *testArena) bodyOf(id ecs.EntityID) *physics.Body {
	b, ok := ecs.GetComponent[*components.PhysicsBodyComponent](a.em, id)
	if !ok {
		return nil
	}
	return a.world.Body(b.Body)
}

func (a *testArena) weapon(size components.WeaponSize) (ecs.EntityID, *components.WeaponComponent) {
	for _, id := range ecs.GetEntitiesWith1[*components.WeaponComponent](a.em) {
		w, _ := ecs.GetComponent[*components.WeaponComponent](a.em, id)
		if w.Size == size {
			return id, w
		}
	}
	return 0, nil
}
