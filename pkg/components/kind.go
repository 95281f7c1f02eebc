package components

// Kind 实体类别
// 同步、击杀平面和批量清理按类别筛选实体
type Kind int

const (
	KindStatic     Kind = iota // 地板、墙壁、展示台
	KindBullet                 // 子弹
	KindGrenade                // 手雷
	KindGem                    // 宝箱开出的宝石
	KindObstacle               // 障碍物（静止或摆动）
	KindCrate                  // 抽奖宝箱
	KindGun                    // 可拾取的枪
	KindEnemy                  // 敌人
	KindDecoration             // 锁、价格牌
	KindButton                 // 重置按钮
	KindPlayer                 // 玩家
)

var kindNames = [...]string{
	KindStatic:     "static",
	KindBullet:     "bullet",
	KindGrenade:    "grenade",
	KindGem:        "gem",
	KindObstacle:   "obstacle",
	KindCrate:      "crate",
	KindGun:        "gun",
	KindEnemy:      "enemy",
	KindDecoration: "decoration",
	KindButton:     "button",
	KindPlayer:     "player",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindComponent 标记实体所属类别
type KindComponent struct {
	Kind Kind
}
