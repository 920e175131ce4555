//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"iter"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

const statusHeight = 32

// Game adapts a cleaner session to the ebiten.Game interface.
type Game struct {
	session *interpreter.Session
	grid    interpreter.Grid
	pose    interpreter.Pose
	pacer   *Pacer
	scale   int
	status  string

	next func() (interpreter.Step, error, bool)
	stop func()

	cellColor   color.Color
	activeColor color.Color
	offColor    color.Color
}

// New constructs a Game for the session. Its environment must be ready.
func New(session *interpreter.Session, scale int, interval time.Duration) (*Game, error) {
	grid, ok := session.Env.Grid()
	start, okStart := session.Env.Start()
	if !ok || !okStart {
		return nil, interpreter.ErrNotReady
	}
	if scale <= 0 {
		scale = 32
	}
	return &Game{
		session:     session,
		grid:        grid,
		pose:        start,
		pacer:       NewPacer(interval),
		scale:       scale,
		status:      "space: play  q: quit",
		cellColor:   color.RGBA{0x30, 0x30, 0x30, 0xff},
		activeColor: color.RGBA{0x2e, 0xa0, 0x43, 0xff},
		offColor:    color.RGBA{0xc0, 0x30, 0x30, 0xff},
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(session *interpreter.Session, scale int, interval time.Duration) error {
	g, err := New(session, scale, interval)
	if err != nil {
		return err
	}
	defer g.halt()

	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("cleaner " + g.grid.String())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// play starts a fresh run from the starting pose.
func (g *Game) play() {
	g.halt()
	run, err := g.session.Play(context.Background(), 0)
	if err != nil {
		g.status = err.Error()
		return
	}
	g.pose = run.Robot().Pose()
	g.next, g.stop = iter.Pull2(g.session.Trace(run))
	g.pacer.Reset()
	g.status = "running " + run.ID[:8]
}

func (g *Game) halt() {
	if g.stop != nil {
		g.stop()
	}
	g.next, g.stop = nil, nil
}

// Update handles input and releases one step per pacer interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.play()
	}
	if g.next == nil || !g.pacer.Due(time.Now()) {
		return nil
	}

	step, err, ok := g.next()
	switch {
	case !ok:
		g.status = fmt.Sprintf("done at %s", g.pose)
		g.halt()
	case err != nil:
		slog.Warn("run halted", "error", err)
		g.status = err.Error()
		g.halt()
	default:
		g.pose = step.Pose
		g.status = fmt.Sprintf("step %d %s %s", step.Index, step.Command, step.Pose)
	}
	return nil
}

// Draw paints a fresh board for the current pose.
func (g *Game) Draw(screen *ebiten.Image) {
	s := float32(g.scale)
	for _, c := range g.grid.Board(g.pose) {
		col := c.Index % g.grid.Width
		row := c.Index / g.grid.Width
		x, y := float32(col)*s, float32(row)*s
		clr := g.cellColor
		if c.Active {
			clr = g.activeColor
		}
		vector.DrawFilledRect(screen, x+1, y+1, s-2, s-2, clr, false)
		if c.Active {
			ebitenutil.DebugPrintAt(screen, string(g.pose.Direction.Glyph()), int(x)+g.scale/2-3, int(y)+g.scale/2-8)
		}
	}
	if !g.grid.Contains(g.pose.X, g.pose.Y) {
		vector.DrawFilledRect(screen, 0, float32(g.grid.Height)*s, float32(g.grid.Width)*s, 4, g.offColor, false)
	}
	ebitenutil.DebugPrintAt(screen, g.status, 4, g.grid.Height*g.scale+8)
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return g.grid.Width * g.scale, g.grid.Height*g.scale + statusHeight
}
