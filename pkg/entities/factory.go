package entities

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/decker502/gunroom/pkg/telemetry"
	"github.com/go-gl/mathgl/mgl64"
)

// ModelLoader 异步模型加载接口（assets.Loader 实现了它）
type ModelLoader interface {
	Load(path string, onSuccess func(*scenegraph.Node), onError func(error))
}

// Materials 场景中使用的物理材质
type Materials struct {
	Floor  physics.MaterialID
	Wall   physics.MaterialID
	Player physics.MaterialID
	Bullet physics.MaterialID
}

// Factory 创建与销毁实体
// 每个实体同时登记在实体管理器、物理世界和场景图中，注册表独占这组配对
type Factory struct {
	EM     *ecs.EntityManager
	World  physics.World
	Scene  scenegraph.Scene
	Loader ModelLoader
	Hooks  telemetry.Hooks
	Config *config.GameConfig
	Rand   *rand.Rand

	Materials Materials
}

// NewFactory 创建工厂并注册接触材质
// loader 为 nil 时异步模型一律视为加载失败
func NewFactory(em *ecs.EntityManager, world physics.World, scene scenegraph.Scene, loader ModelLoader, cfg *config.GameConfig, rng *rand.Rand) *Factory {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	f := &Factory{
		EM:     em,
		World:  world,
		Scene:  scene,
		Loader: loader,
		Hooks:  telemetry.Nop{},
		Config: cfg,
		Rand:   rng,
	}
	f.Materials = setupMaterials(world)
	return f
}

func setupMaterials(world physics.World) Materials {
	m := Materials{
		Floor:  world.NewMaterial(),
		Wall:   world.NewMaterial(),
		Player: world.NewMaterial(),
		Bullet: world.NewMaterial(),
	}
	world.AddContactMaterial(physics.ContactMaterial{A: m.Player, B: m.Floor, Friction: 0, Restitution: 0})
	world.AddContactMaterial(physics.ContactMaterial{A: m.Bullet, B: m.Floor, Friction: 0.3, Restitution: 0.5})
	world.AddContactMaterial(physics.ContactMaterial{A: m.Bullet, B: m.Wall, Friction: 0.3, Restitution: 0.5})
	return m
}

// spawnBody 创建带刚体和视觉节点的实体，视觉节点初始变换取自刚体
// node 为 nil 时实体暂无视觉（等待异步加载）
func (f *Factory) spawnBody(kind components.Kind, desc physics.BodyDesc, node *scenegraph.Node) ecs.EntityID {
	id := f.EM.CreateEntity()
	f.EM.AddComponent(id, &components.KindComponent{Kind: kind})

	bodyID := f.World.AddBody(desc)
	f.EM.AddComponent(id, &components.PhysicsBodyComponent{Body: bodyID})

	visual := &components.VisualComponent{}
	if node != nil {
		if body := f.World.Body(bodyID); body != nil {
			node.Position = body.Position
			node.Quaternion = body.Quaternion
		}
		visual.Node = f.Scene.Add(node)
	}
	f.EM.AddComponent(id, visual)
	return id
}

// spawnVisual 创建只有视觉节点的实体（展示台、价格牌、宝箱等）
func (f *Factory) spawnVisual(kind components.Kind, node *scenegraph.Node) ecs.EntityID {
	id := f.EM.CreateEntity()
	f.EM.AddComponent(id, &components.KindComponent{Kind: kind})
	visual := &components.VisualComponent{}
	if node != nil {
		visual.Node = f.Scene.Add(node)
	}
	f.EM.AddComponent(id, visual)
	return id
}

// attachModel 异步加载模型并挂到实体上
// 加载完成时实体若已被销毁，丢弃模型；失败时实体保持无视觉
func (f *Factory) attachModel(id ecs.EntityID, path string, setup func(*scenegraph.Node)) {
	if f.Loader == nil {
		log.Printf("[EntityFactory] No model loader, entity %d stays invisible (%s)", id, path)
		f.Hooks.AssetFailed()
		return
	}
	f.Loader.Load(path, func(node *scenegraph.Node) {
		visual, ok := ecs.GetComponent[*components.VisualComponent](f.EM, id)
		if !ok {
			log.Printf("[EntityFactory] Entity %d gone before %s finished loading", id, path)
			return
		}
		node.SetShadows(true, true)
		if setup != nil {
			setup(node)
		}
		if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](f.EM, id); ok {
			if b := f.World.Body(body.Body); b != nil {
				node.Position = b.Position
				node.Quaternion = b.Quaternion
			}
		}
		if visual.Node != 0 {
			f.Scene.Remove(visual.Node)
		}
		visual.Node = f.Scene.Add(node)
	}, func(err error) {
		log.Printf("[EntityFactory] Model %s for entity %d failed: %v", path, id, err)
		f.Hooks.AssetFailed()
	})
}

func vec(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
