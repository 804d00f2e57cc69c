// Package ebitenhost runs a trellis layout tree inside an Ebitengine game.
//
// A [Host] implements [ebiten.Game]. Its Layout method feeds the window size
// into the tree's viewport, Update turns pointer and wheel input into drag
// and scroll offsets and then recomputes the layout, and Draw renders a
// wireframe of the tree when debugging is on. Games that draw their own
// widgets read node rectangles in [RunConfig.OnDraw].
//
//	tree := trellis.NewTree()
//	// ... add nodes ...
//	host := ebitenhost.New(tree, ebitenhost.RunConfig{Title: "UI", Width: 800, Height: 600})
//	host.EnableDrag(panel)
//	host.EnableScroll(list)
//	if err := host.Run(); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/trellis"
)

// RunConfig configures the window and per-frame hooks.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug draws every node's bounds and content box and names the node
	// under the cursor. F3 toggles it at run time.
	Debug bool
	// Background fills the screen before drawing. Nil leaves it untouched.
	Background color.Color

	// OnUpdate runs before input is processed each tick.
	OnUpdate func() error
	// OnDraw runs after the layout is current, before the debug overlay.
	OnDraw func(screen *ebiten.Image, tree *trellis.Tree)
}

// Host adapts a trellis.Tree to the ebiten.Game interface.
type Host struct {
	tree *trellis.Tree
	cfg  RunConfig

	draggable  map[*trellis.Node]struct{}
	scrollable map[*trellis.Node]struct{}

	pointer      pointerState
	dragDeadZone float64
	wheelSpeed   float64
	injectQueue  []syntheticPointerEvent
	handlers     handlerRegistry

	targets targetCache
}

// New creates a host for tree. Width and Height also seed the viewport so
// the first Update before Layout has a sensible size.
func New(tree *trellis.Tree, cfg RunConfig) *Host {
	h := &Host{
		tree:         tree,
		cfg:          cfg,
		draggable:    make(map[*trellis.Node]struct{}),
		scrollable:   make(map[*trellis.Node]struct{}),
		dragDeadZone: defaultDragDeadZone,
		wheelSpeed:   defaultWheelSpeed,
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		tree.SetViewportSize(float64(cfg.Width), float64(cfg.Height))
	}
	return h
}

// Run opens a window and runs tree until the window closes.
func Run(tree *trellis.Tree, cfg RunConfig) error {
	return New(tree, cfg).Run()
}

// Run opens a window and blocks until it closes.
func (h *Host) Run() error {
	w, hgt := h.cfg.Width, h.cfg.Height
	if w <= 0 {
		w = 640
	}
	if hgt <= 0 {
		hgt = 480
	}
	ebiten.SetWindowSize(w, hgt)
	if h.cfg.Title != "" {
		ebiten.SetWindowTitle(h.cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

// SetDebug turns the wireframe overlay on or off. Tree statistics are
// separate; see trellis.Tree.SetDebugMode.
func (h *Host) SetDebug(enabled bool) {
	h.cfg.Debug = enabled
}

// Tree returns the hosted tree.
func (h *Host) Tree() *trellis.Tree { return h.tree }

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.cfg.OnUpdate != nil {
		if err := h.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		h.SetDebug(!h.cfg.Debug)
	}
	h.step(h.processMouse)
	h.targets.dropDisposed()
	return nil
}

// step brings the layout up to date, applies one injected event or, when
// none is queued, real input, then updates again so the frame draws the
// result. Hit tests and drag math need current rectangles.
func (h *Host) step(realInput func()) {
	h.tree.Update()
	if !h.processInjectedInput() {
		realInput()
	}
	h.tree.Update()
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.cfg.Background != nil {
		screen.Fill(h.cfg.Background)
	}
	if h.cfg.OnDraw != nil {
		h.cfg.OnDraw(screen, h.tree)
	}
	if h.cfg.Debug {
		h.drawDebug(screen)
	}
	if h.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game. The outside size becomes the viewport.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.tree.SetViewportSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
