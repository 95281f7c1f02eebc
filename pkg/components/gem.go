package components

import "image/color"

// GemComponent 宝箱开出的宝石
type GemComponent struct {
	Color  color.RGBA
	Tier   int  // 0..3
	Payout int  // 仅 crate5 非零
	Reward bool // 是否为当前显示奖励文字的宝石
}
