package config

// 竞技场固定常量
// 本文件定义物理步长、击杀平面、射击与换弹等不可配置的玩法参数

// Physics Configuration (物理配置)
const (
	// Gravity 重力加速度（单位/秒²），沿 -Y
	Gravity = -9.82

	// PhysicsStepsPerSecond 每秒物理步数；固定步长为 1/(60*1.5) 秒
	PhysicsStepsPerSecond = 60 * 1.5

	// KillPlaneY 击杀平面高度，低于此高度的实体视为死亡并被回收
	KillPlaneY = -10.0
)

// Player Configuration (玩家配置)
const (
	// PlayerHeight 摄像机离地高度
	PlayerHeight = 1.8

	// PlayerMass 玩家刚体质量
	PlayerMass = 70.0

	// JumpVelocity 起跳时写入的竖直速度
	JumpVelocity = 30.0

	// JumpPeakHeight 从起跳高度上升超过此值后强制下落
	JumpPeakHeight = 6.0

	// JumpDescentVelocity 到达峰值后强制写入的竖直速度（软着陆）
	JumpDescentVelocity = -10.0

	// GroundedSpeed 竖直速度绝对值低于此值视为着地，重新允许起跳
	GroundedSpeed = 0.1

	// LookSensitivity 鼠标位移除以该值得到转角（弧度）
	LookSensitivity = 500.0
)

// Shooting Configuration (射击配置)
const (
	// BulletBaseSpeed 子弹初速度，实际速度为 BulletBaseSpeed + 当前移动加成
	BulletBaseSpeed = 50.0

	// BulletLinearDamping 子弹空气阻力
	BulletLinearDamping = 0.2

	// ReloadDelay 换弹延迟（秒）
	ReloadDelay = 1.0

	// DefaultMagazineSize 默认弹匣容量
	DefaultMagazineSize = 10
)

// Interaction Configuration (交互配置)
const (
	// GunInteractionRange 拾取枪械的最大轴向距离（X、Z 分别比较）
	GunInteractionRange = 15.0

	// CrateInteractionRange 开启宝箱的最大轴向距离（X、Z 分别比较）
	CrateInteractionRange = 20.0

	// SelectedRaise 选中的枪械抬高的高度
	SelectedRaise = 2.0

	// PickableSpinPerFrame 可拾取物每帧绕 Y 轴旋转的弧度
	PickableSpinPerFrame = 0.01
)

// Obstacle Configuration (障碍物配置)
const (
	// ObstacleAmplitude 摆动障碍物的水平振幅
	ObstacleAmplitude = 4.0

	// ObstaclePhaseStep 相位偏移 = 索引 * ObstaclePhaseStep
	ObstaclePhaseStep = 0.5

	// ObstacleTimeScale 毫秒时间到正弦参数的缩放
	ObstacleTimeScale = 0.001
)

// Enemy / Gem Configuration (敌人与宝石配置)
const (
	EnemyRadius        = 3.0
	EnemyMass          = 20.0
	EnemyLinearDamping = 0.2

	// RewardClearHeight 奖励宝石落到此高度以下时清除奖励文字
	RewardClearHeight = 0.5

	// GemMass 宝石质量
	GemMass = 1.0
)
