package assets

import (
	"context"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/decker502/gunroom/pkg/scenegraph"
)

const gunYAML = `
name: bigGun
scale: [3, 3, 3]
parts:
  - name: body
    half: [0.5, 0.1, 0.1]
    color: "#303030"
    children:
      - name: sight
        position: [0, 0.15, 0]
        half: [0.05, 0.05, 0.05]
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"models/bigGun.yaml": {Data: []byte(gunYAML)},
		"models/broken.yaml": {Data: []byte("name: [")},
	}
}

func TestParseModel(t *testing.T) {
	n, err := ParseModel([]byte(gunYAML))
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	if n.Name != "bigGun" || n.Scale[0] != 3 {
		t.Errorf("root = %q scale %v", n.Name, n.Scale)
	}
	if len(n.Children) != 1 || len(n.Children[0].Children) != 1 {
		t.Fatalf("unexpected hierarchy: %+v", n)
	}
	body := n.Children[0]
	if body.Color != (color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 255}) {
		t.Errorf("body color = %v", body.Color)
	}
	if body.Children[0].Parent != body {
		t.Error("child parent link missing")
	}
}

func TestParseModelErrors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":     "name: [",
		"no name":      "parts: [{name: a}]",
		"no parts":     "name: x",
		"bad vector":   "name: x\nparts: [{name: a, half: [1, 2]}]",
		"bad color":    "name: x\nparts: [{name: a, color: '#12'}]",
		"bad position": "name: x\nparts: [{name: a, position: [1]}]",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseModel([]byte(src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDispatchesOnFrameThread(t *testing.T) {
	m := NewManager()
	l := NewLoader(testFS(), m)

	var got *scenegraph.Node
	l.Load("models/bigGun.yaml", func(n *scenegraph.Node) { got = n }, func(err error) {
		t.Errorf("unexpected error: %v", err)
	})

	if got != nil {
		t.Fatal("callback ran before Dispatch")
	}
	if ran := l.Flush(); ran != 1 {
		t.Errorf("Flush ran %d callbacks, want 1", ran)
	}
	if got == nil || got.Name != "bigGun" {
		t.Fatalf("onSuccess not called with the model: %v", got)
	}
	if !m.Loaded() || m.Progress() != 1 {
		t.Errorf("manager should report loaded, progress %v", m.Progress())
	}
}

func TestLoadReturnsIndependentClones(t *testing.T) {
	l := NewLoader(testFS(), nil)
	var a, b *scenegraph.Node
	l.Load("models/bigGun.yaml", func(n *scenegraph.Node) { a = n }, nil)
	l.Load("models/bigGun.yaml", func(n *scenegraph.Node) { b = n }, nil)
	l.Flush()

	if a == nil || b == nil || a == b {
		t.Fatal("each load should yield its own node")
	}
	a.Children[0].Name = "changed"
	if b.Children[0].Name == "changed" {
		t.Error("clones share children")
	}
}

func TestFailedAssetKeepsGateClosed(t *testing.T) {
	m := NewManager()
	var progress, loads int
	var failedItem string
	m.OnProgress = func(string, int, int) { progress++ }
	m.OnLoad = func() { loads++ }
	m.OnError = func(item string, _ error) { failedItem = item }
	l := NewLoader(testFS(), m)

	var errs int
	l.Load("models/bigGun.yaml", nil, nil)
	l.Load("models/missing.yaml", nil, func(error) { errs++ })
	l.Load("models/broken.yaml", nil, func(error) { errs++ })
	l.Flush()

	if errs != 2 {
		t.Errorf("onError calls = %d, want 2", errs)
	}
	if loads != 0 || m.Loaded() {
		t.Error("OnLoad must not fire while an asset failed")
	}
	if progress != 1 {
		t.Errorf("progress callbacks = %d, want 1", progress)
	}
	if failedItem == "" {
		t.Error("OnError not reported")
	}
	total, loaded, failed := m.Counts()
	if total != 3 || loaded != 1 || failed != 2 {
		t.Errorf("counts = %d/%d/%d", total, loaded, failed)
	}
}

func TestOnLoadFiresOnce(t *testing.T) {
	m := NewManager()
	fired := 0
	m.OnLoad = func() { fired++ }
	l := NewLoader(testFS(), m)

	l.Load("models/bigGun.yaml", nil, nil)
	l.Flush()
	l.Load("models/bigGun.yaml", nil, nil)
	l.Flush()

	if fired != 1 {
		t.Errorf("OnLoad fired %d times, want 1", fired)
	}
}

func TestPreload(t *testing.T) {
	l := NewLoader(testFS(), nil)
	if err := l.Preload(context.Background(), []string{"models/bigGun.yaml"}); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if err := l.Preload(context.Background(), []string{"models/bigGun.yaml", "models/broken.yaml"}); err == nil {
		t.Error("Preload should report the broken model")
	}
}
