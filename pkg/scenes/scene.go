package scenes

import (
	"github.com/decker502/gunroom/pkg/game"
)

// Scene is a type alias for game.Scene so callers can stay in this package.
type Scene = game.Scene
