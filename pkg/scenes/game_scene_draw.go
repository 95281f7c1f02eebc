package scenes

import (
	"image/color"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	playerColor     = color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
)

// Draw 俯视调试视图：X 轴向右，Z 轴向下，然后叠加 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	origin := mgl64.Vec2{float64(w) / 2, float64(h) / 2}

	// 先创建的画在下面
	for _, root := range s.graph.Roots() {
		root.Traverse(func(n *scenegraph.Node) {
			if n.Bounds.Len() == 0 || !n.Visible {
				return
			}
			drawFootprint(screen, origin, n)
		})
	}
	s.drawPlayer(screen, origin)
	s.hud.Draw(screen)
}

// drawFootprint 画出节点在 XZ 平面上的包围盒（忽略旋转）
func drawFootprint(screen *ebiten.Image, origin mgl64.Vec2, n *scenegraph.Node) {
	pos, _, scale := n.WorldTransform()
	hx := n.Bounds.X() * scale.X() * config.TopDownScale
	hz := n.Bounds.Z() * scale.Z() * config.TopDownScale
	cx := origin.X() + pos.X()*config.TopDownScale
	cz := origin.Y() + pos.Z()*config.TopDownScale
	vector.DrawFilledRect(screen, float32(cx-hx), float32(cz-hz), float32(2*hx), float32(2*hz), n.Color, false)
}

func (s *GameScene) drawPlayer(screen *ebiten.Image, origin mgl64.Vec2) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.em, s.player)
	if !ok {
		return
	}
	px := origin.X() + cam.Position.X()*config.TopDownScale
	pz := origin.Y() + cam.Position.Z()*config.TopDownScale
	vector.DrawFilledCircle(screen, float32(px), float32(pz), 4, playerColor, true)

	f := cam.Forward()
	const sight = 30
	vector.StrokeLine(screen, float32(px), float32(pz),
		float32(px+f.X()*sight), float32(pz+f.Z()*sight), 1.5, playerColor, true)
}
