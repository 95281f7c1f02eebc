package hud

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw prints the HUD in the top-left corner and overlays centred on the
// screen.
func (s *State) Draw(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "Coins: %d\n", s.Coins)
	fmt.Fprintf(&b, "Bullets: %d\n", s.Ammo)
	if s.Weapon != SilhouetteNone {
		fmt.Fprintf(&b, "Weapon: %s\n", s.Weapon)
	}
	if s.Reloading {
		b.WriteString("RELOADING...\n")
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 8, 8)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if s.RewardActive {
		ebitenutil.DebugPrintAt(screen, s.Reward, w/2-len(s.Reward)*3, h/2-40)
	}
	switch {
	case s.Tutorial:
		ebitenutil.DebugPrintAt(screen,
			"WASD move, Shift run, E jump\nSpace fire, R reload\nClick guns and crates to buy\nClick to start",
			w/2-90, h/2)
	case s.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - click to resume", w/2-72, h/2)
	}
}
