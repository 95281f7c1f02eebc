package systems

import (
	"math"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/input"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerControlSystem 根据按键移动玩家刚体，处理跳跃、掉落重生和视角
//
// 移动直接写入刚体位置（不经过速度），方向键之间叠加，
// 斜向移动不做归一化，速度为单方向的 √2 倍
type PlayerControlSystem struct {
	em       *ecs.EntityManager
	world    physics.World
	keys     *input.State
	bindings input.Bindings
	playerID ecs.EntityID

	// PointerLocked 只有锁定鼠标时才响应视角移动
	PointerLocked bool

	// RespawnPosition 掉出地图后的传送点
	RespawnPosition mgl64.Vec3
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, world physics.World, keys *input.State, bindings input.Bindings, playerID ecs.EntityID, respawn mgl64.Vec3) *PlayerControlSystem {
	return &PlayerControlSystem{
		em:              em,
		world:           world,
		keys:            keys,
		bindings:        bindings,
		playerID:        playerID,
		RespawnPosition: respawn,
	}
}

// Look 鼠标位移转为视角：yaw -= dx/500, pitch -= dy/500，pitch 限制在 ±90°
func (s *PlayerControlSystem) Look(dx, dy float64) {
	if !s.PointerLocked {
		return
	}
	camera, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.playerID)
	if !ok {
		return
	}
	camera.Yaw -= dx / config.LookSensitivity
	camera.Pitch -= dy / config.LookSensitivity
	camera.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, camera.Pitch))
}

// Update 每帧执行一次（物理步进之后）
func (s *PlayerControlSystem) Update() {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok {
		return
	}
	camera, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.playerID)
	if !ok {
		return
	}
	bodyComp, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.em, s.playerID)
	if !ok {
		return
	}
	body := s.world.Body(bodyComp.Body)
	if body == nil {
		return
	}

	player.Fast = 0
	boost := func() {
		player.Fast = player.Speed
		if s.keys.Shift() {
			player.Fast *= 2
		}
	}

	if s.keys.Pressed(s.bindings.Jump) && player.CanJump {
		player.StartJump = body.Position.Y()
		boost()
		body.Velocity[1] = config.JumpVelocity
		player.CanJump = false
	}

	yaw := camera.Yaw
	move := func(offset, sign float64) {
		boost()
		body.Position[0] -= sign * math.Sin(yaw+offset) * player.Fast
		body.Position[2] -= sign * math.Cos(yaw+offset) * player.Fast
	}
	if s.keys.Pressed(s.bindings.Forward) {
		move(0, 1)
	}
	if s.keys.Pressed(s.bindings.Left) {
		move(math.Pi/2, 1)
	}
	if s.keys.Pressed(s.bindings.Back) {
		move(0, -1)
	}
	if s.keys.Pressed(s.bindings.Right) {
		move(-math.Pi/2, 1)
	}

	if body.Position.Y() < config.KillPlaneY {
		body.Position = s.RespawnPosition
	}
	if math.Abs(body.Velocity.Y()) < config.GroundedSpeed {
		player.CanJump = true
		player.StartJump = 0
	}
	if body.Position.Y()-player.StartJump >= config.JumpPeakHeight {
		body.Velocity[1] = config.JumpDescentVelocity
	}

	camera.Position = body.Position
}

// Teleport 把玩家放到 pos（敌人死亡后回到出生点）
func (s *PlayerControlSystem) Teleport(pos mgl64.Vec3) {
	bodyComp, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.em, s.playerID)
	if !ok {
		return
	}
	if body := s.world.Body(bodyComp.Body); body != nil {
		body.Position = pos
	}
	if camera, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.playerID); ok {
		camera.Position = pos
	}
}
