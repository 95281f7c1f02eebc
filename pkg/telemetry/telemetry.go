// Package telemetry makes the arena's silent failure paths observable:
// rejected purchases, dry fires and failed asset loads are counted instead of
// surfacing to the player.
package telemetry

// Rejection reasons (bounded label values).
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonOutOfRange        = "out_of_range"
)

// Hooks receives gameplay events. Implementations must be cheap; they are
// called from the frame loop.
type Hooks interface {
	ShotFired(weapon string)
	DryFire()
	Reloaded()
	Purchased(item string, price int)
	PurchaseRejected(item, reason string)
	CrateRolled(crate string, tier int, payout int)
	AssetFailed()
	EnemyKilled()
	CoinsChanged(coins int)
	EntitiesLive(kind string, n int)
}

// Nop discards every event.
type Nop struct{}

func (Nop) ShotFired(string)                {}
func (Nop) DryFire()                        {}
func (Nop) Reloaded()                       {}
func (Nop) Purchased(string, int)           {}
func (Nop) PurchaseRejected(string, string) {}
func (Nop) CrateRolled(string, int, int)    {}
func (Nop) AssetFailed()                    {}
func (Nop) EnemyKilled()                    {}
func (Nop) CoinsChanged(int)                {}
func (Nop) EntitiesLive(string, int)        {}
