package assets

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ModelFile is the YAML descriptor of a hierarchical model.
//
// Example:
//
//	name: bigGun
//	scale: [1, 1, 1]
//	parts:
//	  - name: barrel
//	    position: [0.3, 0, 0]
//	    half: [0.5, 0.1, 0.1]
//	    color: "#303030"
type ModelFile struct {
	Name  string     `yaml:"name"`
	Scale []float64  `yaml:"scale,omitempty"`
	Parts []PartDesc `yaml:"parts"`
}

// PartDesc is one node of a model; parts without half extents are groups.
type PartDesc struct {
	Name     string     `yaml:"name"`
	Position []float64  `yaml:"position,omitempty"`
	Rotation []float64  `yaml:"rotation,omitempty"` // Euler XYZ, radians
	Half     []float64  `yaml:"half,omitempty"`
	Color    string     `yaml:"color,omitempty"`
	Children []PartDesc `yaml:"children,omitempty"`
}

// ParseModel decodes a descriptor into a detached node tree.
func ParseModel(data []byte) (*scenegraph.Node, error) {
	var mf ModelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}
	if mf.Name == "" {
		return nil, fmt.Errorf("model has no name")
	}
	if len(mf.Parts) == 0 {
		return nil, fmt.Errorf("model %q has no parts", mf.Name)
	}

	root := scenegraph.NewNode(mf.Name)
	if len(mf.Scale) > 0 {
		s, err := vec3(mf.Scale)
		if err != nil {
			return nil, fmt.Errorf("model %q scale: %w", mf.Name, err)
		}
		root.Scale = s
	}
	for _, p := range mf.Parts {
		child, err := buildPart(p)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", mf.Name, err)
		}
		root.AddChild(child)
	}
	return root, nil
}

func buildPart(p PartDesc) (*scenegraph.Node, error) {
	n := scenegraph.NewNode(p.Name)
	var err error
	if len(p.Position) > 0 {
		if n.Position, err = vec3(p.Position); err != nil {
			return nil, fmt.Errorf("part %q position: %w", p.Name, err)
		}
	}
	if len(p.Rotation) > 0 {
		r, err := vec3(p.Rotation)
		if err != nil {
			return nil, fmt.Errorf("part %q rotation: %w", p.Name, err)
		}
		n.Quaternion = mgl64.AnglesToQuat(r[0], r[1], r[2], mgl64.XYZ)
	}
	if len(p.Half) > 0 {
		if n.Bounds, err = vec3(p.Half); err != nil {
			return nil, fmt.Errorf("part %q half: %w", p.Name, err)
		}
	}
	if p.Color != "" {
		if n.Color, err = ParseColor(p.Color); err != nil {
			return nil, fmt.Errorf("part %q: %w", p.Name, err)
		}
	}
	for _, c := range p.Children {
		child, err := buildPart(c)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func vec3(v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// ParseColor accepts "#rrggbb" or "0xrrggbb".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
