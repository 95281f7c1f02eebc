package game

// MaxCoins 金币上限
const MaxCoins = 9999

// GameState 竞技场经济状态
// 由 GameScene 持有并传给各系统，只在帧线程上修改
type GameState struct {
	coins int

	// OnCoinsChanged 金币变化后回调（HUD、遥测），可为 nil
	OnCoinsChanged func(coins int)
}

// NewGameState 以初始金币创建状态，负值按 0 处理
func NewGameState(coins int) *GameState {
	if coins < 0 {
		coins = 0
	}
	if coins > MaxCoins {
		coins = MaxCoins
	}
	return &GameState{coins: coins}
}

// Coins 返回当前金币
func (gs *GameState) Coins() int {
	return gs.coins
}

// AddCoins 增加金币，带上限检查；非正数忽略
func (gs *GameState) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	gs.coins += amount
	if gs.coins > MaxCoins {
		gs.coins = MaxCoins
	}
	gs.notify()
}

// SpendCoins 扣除金币，如果金币不足返回 false 且余额不变
func (gs *GameState) SpendCoins(amount int) bool {
	if amount < 0 || gs.coins < amount {
		return false
	}
	gs.coins -= amount
	gs.notify()
	return true
}

// CanAfford 余额是否足够
func (gs *GameState) CanAfford(amount int) bool {
	return amount >= 0 && gs.coins >= amount
}

func (gs *GameState) notify() {
	if gs.OnCoinsChanged != nil {
		gs.OnCoinsChanged(gs.coins)
	}
}
