package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// startPlaying resets the game and toggles play on.
func startPlaying(g *Game, seed int64) {
	g.Reset(testConfig(seed))
	start := core.NewInputFrame()
	start.Set(core.ActionPause)
	g.Step(start)
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, two runs produce identical snapshots
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputSequence[i].Set(core.ActionPause)
		case i%40 == 0:
			inputSequence[i].Set(core.ActionRotate)
		case i%25 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%31 == 0:
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		for _, in := range inputSequence {
			g.Step(in)
			if g.gameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1 != s2 {
		t.Errorf("determinism failed:\nrun1 %+v\nrun2 %+v", s1, s2)
	}
}

func TestResetYieldsFreshState(t *testing.T) {
	g := New()
	startPlaying(g, 42)

	// Advance well into a game
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionRotate)
		}
		g.Step(in)
	}

	g.Reset(testConfig(42))

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("Reset should clear score, got %d", snap.Score)
	}
	if snap.RowsCleared != 0 {
		t.Errorf("Reset should clear row count, got %d", snap.RowsCleared)
	}
	if snap.Tick != 0 {
		t.Errorf("Reset should clear tick, got %d", snap.Tick)
	}
	if snap.State != StatePaused {
		t.Errorf("Reset should leave the game not playing, state = %s", snap.State)
	}
	if snap.LockedCells != 0 {
		t.Errorf("Reset should empty the grid, %d cells locked", snap.LockedCells)
	}
	if snap.Boost {
		t.Error("Reset should clear the boost flag")
	}

	// Same seed means the same opening pieces
	g2 := New()
	g2.Reset(testConfig(42))
	if g.piece != g2.piece || g.next != g2.next {
		t.Error("Reset with the same seed should deal the same pieces")
	}
}

func TestTogglePlay(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.playing {
		t.Fatal("game should start paused, waiting for the player")
	}

	toggle := core.NewInputFrame()
	toggle.Set(core.ActionPause)

	g.Step(toggle)
	if !g.playing {
		t.Error("first toggle should start play")
	}

	// While paused, ticks are no-ops for the simulation
	g.Step(toggle)
	if g.playing {
		t.Error("second toggle should pause")
	}

	before := g.Snapshot()
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	if before.PieceRow != after.PieceRow || before.LockedCells != after.LockedCells {
		t.Error("paused game should not advance the simulation")
	}
}

func TestGravityDropsPiece(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	startRow := g.piece.Row
	interval := int(g.cfg.Gravity.DropEveryTicks)

	for i := 0; i < interval; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.piece.Row != startRow+1 {
		t.Errorf("after one gravity interval piece row = %d, want %d", g.piece.Row, startRow+1)
	}
}

func TestBoostTogglesFlagOnly(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	rowBefore := g.piece.Row

	on := core.NewInputFrame()
	on.Set(core.ActionBoostOn)
	g.Step(on)

	if !g.boost {
		t.Error("BoostOn should set the boost flag")
	}
	if g.piece.Row != rowBefore {
		t.Error("BoostOn by itself must not trigger a drop")
	}

	off := core.NewInputFrame()
	off.Set(core.ActionBoostOff)
	g.Step(off)

	if g.boost {
		t.Error("BoostOff should clear the boost flag")
	}
}

func TestBoostShortensGravityInterval(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	// Enable boost before starting so the first scheduled drop uses it
	on := core.NewInputFrame()
	on.Set(core.ActionBoostOn)
	g.Step(on)

	start := core.NewInputFrame()
	start.Set(core.ActionPause)
	g.Step(start)

	startRow := g.piece.Row
	boostInterval := int(g.cfg.Gravity.BoostEveryTicks)

	for i := 0; i < boostInterval; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.piece.Row != startRow+1 {
		t.Errorf("boosted piece row = %d after %d ticks, want %d", g.piece.Row, boostInterval, startRow+1)
	}
}

func TestIllegalMoveIsIgnored(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	// Walk the piece into the left wall
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < Cols; i++ {
		g.Step(left)
	}

	colAtWall := g.piece.Col
	g.Step(left)

	if g.piece.Col != colAtWall {
		t.Errorf("move into the wall changed col from %d to %d", colAtWall, g.piece.Col)
	}
	if g.gameOver {
		t.Error("an illegal move must not end the game")
	}
}

// forceLock schedules gravity for the next step so the piece drops or locks
// immediately.
func forceLock(g *Game) {
	g.nextDropTick = g.tick
	g.Step(core.NewInputFrame())
}

func TestRowClearScoring(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	// Bottom row occupied except the four leftmost columns
	var cells []CellPos
	for col := 4; col < Cols; col++ {
		cells = append(cells, CellPos{Col: col, Row: Rows - 1})
	}
	g.grid = g.grid.Merge(cells, core.ColorGray)

	// Rest a horizontal I on the floor over the gap
	g.piece = Piece{Shape: ShapeI, Col: 0, Row: Rows - 2}

	scoreBefore := g.score
	forceLock(g)

	if g.rowsCleared != 1 {
		t.Fatalf("rowsCleared = %d, want 1", g.rowsCleared)
	}
	if got := g.score - scoreBefore; got != g.cfg.Scoring.PointsPerRow {
		t.Errorf("score increased by %d, want %d", got, g.cfg.Scoring.PointsPerRow)
	}
	if g.grid.OccupiedCount() != 0 {
		t.Errorf("grid should be empty after the clear, %d cells locked", g.grid.OccupiedCount())
	}
	if g.gameOver {
		t.Error("clearing a row must not end the game")
	}
}

func TestDoubleRowClearScoring(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	// Two bottom rows occupied except the rightmost column
	var cells []CellPos
	for col := 0; col < Cols-1; col++ {
		cells = append(cells,
			CellPos{Col: col, Row: Rows - 1},
			CellPos{Col: col, Row: Rows - 2},
		)
	}
	g.grid = g.grid.Merge(cells, core.ColorGray)

	// Vertical I in the last column, resting on the floor
	g.piece = Piece{Shape: ShapeI, Rotation: 1, Col: Cols - 3, Row: Rows - 4}

	forceLock(g)

	if g.rowsCleared != 2 {
		t.Fatalf("rowsCleared = %d, want 2", g.rowsCleared)
	}
	if g.score != 2*g.cfg.Scoring.PointsPerRow {
		t.Errorf("score = %d, want %d", g.score, 2*g.cfg.Scoring.PointsPerRow)
	}
	// The two uncleared cells of the I bar shift down onto the floor
	if g.grid.OccupiedCount() != 2 {
		t.Errorf("grid should keep 2 cells, got %d", g.grid.OccupiedCount())
	}
	if !g.grid.IsOccupied(Cols-1, Rows-1) || !g.grid.IsOccupied(Cols-1, Rows-2) {
		t.Error("leftover bar cells should have compacted to the bottom")
	}
}

func TestFillRowEndToEnd(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	// Drive scripted pieces to the floor under gravity alone: two horizontal
	// bars and a square exactly cover the bottom row.
	dropToFloor := func(p Piece) {
		t.Helper()
		g.piece = p
		before := g.grid.OccupiedCount()
		for i := 0; i < 2*Rows; i++ {
			forceLock(g)
			if g.grid.OccupiedCount() != before || g.rowsCleared > 0 {
				return
			}
		}
		t.Fatal("piece never locked")
	}

	dropToFloor(Piece{Shape: ShapeI, Col: 0})
	dropToFloor(Piece{Shape: ShapeI, Col: 4})
	dropToFloor(Piece{Shape: ShapeO, Col: 8})

	if g.rowsCleared != 1 {
		t.Fatalf("rowsCleared = %d, want 1", g.rowsCleared)
	}
	if g.score != g.cfg.Scoring.PointsPerRow {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Scoring.PointsPerRow)
	}
	// The square's upper half survives the clear and settles on the floor
	if g.grid.OccupiedCount() != 2 {
		t.Errorf("OccupiedCount() = %d, want 2", g.grid.OccupiedCount())
	}
	if !g.grid.IsOccupied(8, Rows-1) || !g.grid.IsOccupied(9, Rows-1) {
		t.Error("surviving square cells should rest on the bottom row")
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	// Clog the spawn area: rows 0 and 1 occupied except column 0, so the
	// rows are not full and every shape's spawn cells are covered.
	var cells []CellPos
	for col := 1; col < Cols; col++ {
		cells = append(cells, CellPos{Col: col, Row: 0}, CellPos{Col: col, Row: 1})
	}
	g.grid = g.grid.Merge(cells, core.ColorGray)

	// Lock the current piece at the bottom to trigger a spawn
	g.piece = Piece{Shape: ShapeO, Col: 0, Row: Rows - 2}
	forceLock(g)

	if !g.gameOver {
		t.Fatal("spawn into a clogged grid should end the game")
	}
	if g.playing {
		t.Error("game over should stop play")
	}

	// Further ticks have no effect until a restart
	snap := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	if snap.LockedCells != after.LockedCells || snap.Score != after.Score {
		t.Error("ticks after game over should not change the state")
	}

	// Restart recovers
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.gameOver {
		t.Error("restart should clear game over")
	}
	if g.score != 0 {
		t.Errorf("restart should reset score, got %d", g.score)
	}
}

func TestPieceLocksOnTopOfStack(t *testing.T) {
	g := New()
	startPlaying(g, 7)

	// A lone block mid-floor
	g.grid = g.grid.Merge([]CellPos{{Col: 4, Row: Rows - 1}}, core.ColorGray)

	// An O directly above it cannot descend
	g.piece = Piece{Shape: ShapeO, Col: 4, Row: Rows - 3}
	forceLock(g)

	if g.grid.OccupiedCount() != 5 {
		t.Errorf("OccupiedCount() = %d, want 5 after lock", g.grid.OccupiedCount())
	}
	if !g.grid.IsOccupied(4, Rows-2) || !g.grid.IsOccupied(5, Rows-2) {
		t.Error("the O should have locked resting on the stack")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The board border must be visible
	foundCorner := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == '┌' {
				foundCorner = true
			}
		}
	}
	if !foundCorner {
		t.Error("render should draw the board border")
	}

	// The active piece is drawn in its shape color
	cells := g.piece.Cells()
	cell := screen.GetCell(g.boardX+1+cells[0].Col, g.boardY+1+cells[0].Row)
	if cell.Rune != blockRune {
		t.Errorf("active piece cell rune = %q, want %q", cell.Rune, blockRune)
	}
	if cell.Color != g.piece.Shape.Color() {
		t.Errorf("active piece cell color = %v, want %v", cell.Color, g.piece.Shape.Color())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.tooSmall {
		t.Fatal("a 10x5 screen cannot fit the board")
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen) // must not panic
}
