// Package hud is the write-only heads-up display sink the game core reports
// to, plus an in-memory implementation that the renderer draws from.
package hud

// Silhouette names the weapon icon shown in the corner.
type Silhouette string

const (
	SilhouetteNone    Silhouette = ""
	SilhouettePistol  Silhouette = "pistol"
	SilhouetteRifle   Silhouette = "rifle"
	SilhouetteGrenade Silhouette = "grenade"
)

// Sink receives HUD updates. The core never reads back from it.
type Sink interface {
	SetCoins(coins int)
	SetAmmo(remaining int)
	SetReloading(visible bool)
	SetWeapon(s Silhouette)
	SetReward(text string)
	ClearReward()
	SetTutorial(visible bool)
	SetPaused(visible bool)
}

// State stores the latest value written to every HUD element.
type State struct {
	Coins        int
	Ammo         int
	Reloading    bool
	Weapon       Silhouette
	Reward       string
	RewardActive bool
	Tutorial     bool
	Paused       bool
}

// NewState returns the HUD as it looks before the first click.
func NewState() *State {
	return &State{Tutorial: true}
}

func (s *State) SetCoins(coins int)        { s.Coins = coins }
func (s *State) SetAmmo(remaining int)     { s.Ammo = remaining }
func (s *State) SetReloading(visible bool) { s.Reloading = visible }
func (s *State) SetWeapon(w Silhouette)    { s.Weapon = w }
func (s *State) SetTutorial(visible bool)  { s.Tutorial = visible }
func (s *State) SetPaused(visible bool)    { s.Paused = visible }

func (s *State) SetReward(text string) {
	s.Reward = text
	s.RewardActive = true
}

func (s *State) ClearReward() {
	s.Reward = ""
	s.RewardActive = false
}
