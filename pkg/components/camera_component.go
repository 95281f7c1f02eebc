package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraComponent 第一人称摄像机
// Yaw 绕 Y 轴，Pitch 绕 X 轴，均为弧度；Pitch 限制在 ±π/2
type CameraComponent struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// Forward 返回摄像机朝向的单位向量（Yaw=0 时朝 -Z）
func (c *CameraComponent) Forward() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl64.Vec3{
		-math.Sin(c.Yaw) * cp,
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw) * cp,
	}
}

// Quaternion 返回摄像机朝向（先 Yaw 后 Pitch）
func (c *CameraComponent) Quaternion() mgl64.Quat {
	yaw := mgl64.QuatRotate(c.Yaw, mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(c.Pitch, mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}
