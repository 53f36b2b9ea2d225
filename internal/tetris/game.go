package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// hudHeight is the number of screen rows reserved above the board.
const hudHeight = 2

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the path to a custom config YAML.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the falling-block engine. All state transitions happen
// synchronously inside Step; the platform owns the clock and input mapping.
type Game struct {
	cfg  config.TetrisConfig
	rng  *rand.Rand
	tick uint64

	grid  Grid
	piece Piece
	next  Piece

	score       int
	rowsCleared int

	boost        bool
	playing      bool
	gameOver     bool
	nextDropTick uint64

	// Screen layout
	screenW  int
	screenH  int
	boardX   int
	boardY   int
	tooSmall bool
}

// New creates a new tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game: fresh empty grid, fresh piece from
// the seeded generator, zero score, not playing until the player starts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	g.cfg = tc

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.rowsCleared = 0
	g.boost = false
	g.playing = false
	g.gameOver = false
	g.nextDropTick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// Dimensions are fixed constants, so this cannot fail in practice.
	grid, err := NewGrid(Cols, Rows)
	if err != nil {
		panic(fmt.Sprintf("tetris: %v", err))
	}
	g.grid = grid

	g.piece = RandomPiece(g.rng)
	g.next = RandomPiece(g.rng)

	g.layout()
}

// layout centers the board on screen and checks the terminal is big enough.
// Board box is Cols+2 x Rows+2 including the border, plus a side panel.
func (g *Game) layout() {
	requiredW := Cols + 2 + sidePanelWidth
	requiredH := Rows + 2 + hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.boardX = (g.screenW - requiredW) / 2
	g.boardY = hudHeight
}

// Step advances the game by one tick. Events are processed one at a time in
// a fixed order: restart, play toggle, boost toggles, manual moves, gravity.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.playing = !g.playing
		if g.playing {
			// Reschedule so a long pause does not burst-drop on resume
			g.nextDropTick = g.tick + g.dropInterval()
		}
	}

	// Boost commands only toggle the flag; they never trigger a drop
	if input.Has(core.ActionBoostOn) {
		g.boost = true
	}
	if input.Has(core.ActionBoostOff) {
		g.boost = false
	}

	if !g.playing || g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processMoves(input)

	if g.tick >= g.nextDropTick {
		g.applyGravity()
	}

	return core.StepResult{State: g.State()}
}

// processMoves applies manual shift and rotate commands. Illegal moves are
// silently ignored: the attempt simply has no effect.
func (g *Game) processMoves(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		if moved, err := g.piece.MoveX(-1, g.grid); err == nil {
			g.piece = moved
		}
	}
	if input.Has(core.ActionRight) {
		if moved, err := g.piece.MoveX(1, g.grid); err == nil {
			g.piece = moved
		}
	}
	if input.Has(core.ActionRotate) {
		if rotated, err := g.piece.Rotate(g.grid); err == nil {
			g.piece = rotated
		}
	}
}

// applyGravity drops the active piece one row, or locks it when it cannot
// descend further: merge into the grid, clear full rows, score them, and
// spawn the next piece. A blocked spawn ends the game.
func (g *Game) applyGravity() {
	if moved, err := g.piece.MoveY(1, g.grid); err == nil {
		g.piece = moved
		g.nextDropTick = g.tick + g.dropInterval()
		return
	}

	g.grid = g.piece.MergeInto(g.grid)

	removed, cleared := g.grid.RemoveFullRows()
	g.grid = cleared
	g.rowsCleared += removed
	g.score += removed * g.cfg.Scoring.PointsPerRow

	g.piece = g.next
	g.next = RandomPiece(g.rng)

	if g.piece.CollidesWith(g.grid) {
		g.gameOver = true
		g.playing = false
		return
	}

	g.nextDropTick = g.tick + g.dropInterval()
}

// dropInterval returns the gravity interval in ticks for the current boost state.
func (g *Game) dropInterval() uint64 {
	if g.boost {
		return uint64(g.cfg.Gravity.BoostEveryTicks)
	}
	return uint64(g.cfg.Gravity.DropEveryTicks)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Playing:  g.playing,
	}
}

// RowsCleared reports the total rows cleared since the last reset.
func (g *Game) RowsCleared() int {
	return g.rowsCleared
}
