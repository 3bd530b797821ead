package blockfall

import (
	"slices"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func newTestGame(seed int64) *Game {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return New(cfg)
}

// place swaps the falling piece for a known one.
func place(g *Game, k Kind, x, y int) {
	s, _ := ShapeOf(k)
	g.piece = NewPiece(s, core.Point{X: x, Y: y})
}

func TestResetState(t *testing.T) {
	g := newTestGame(1)
	g.board.Set(3, 3, KindT)
	g.KeyDown(core.ActionLeft)
	g.KeyDown(core.ActionRotate)
	g.frame = 4

	g.Reset()

	if g.board.Count() != 0 {
		t.Errorf("board has %d cells after Reset, expected 0", g.board.Count())
	}
	if g.frame != 0 {
		t.Errorf("frame = %d after Reset, expected 0", g.frame)
	}
	if g.Input() != (Input{}) {
		t.Errorf("Input() = %+v after Reset, expected all false", g.Input())
	}
	if g.piece == nil || g.piece.Pos.Y != 0 {
		t.Error("Reset should spawn a fresh piece at the top")
	}
}

func TestKeyDownKeyUp(t *testing.T) {
	g := newTestGame(1)

	g.KeyDown(core.ActionLeft)
	g.KeyDown(core.ActionRight)
	g.KeyDown(core.ActionDrop)
	g.KeyDown(core.ActionRotate)
	if g.Input() != (Input{Left: true, Right: true, Down: true, Rotate: true}) {
		t.Fatalf("Input() = %+v, expected all flags set", g.Input())
	}

	g.KeyUp(core.ActionLeft)
	g.KeyUp(core.ActionRight)
	g.KeyUp(core.ActionDrop)
	g.KeyUp(core.ActionRotate)
	if g.Input() != (Input{Rotate: true}) {
		t.Errorf("Input() = %+v, expected only the pending rotation left", g.Input())
	}

	g.KeyDown(core.ActionQuit) // not a game intent
	if g.Input() != (Input{Rotate: true}) {
		t.Error("non-game actions should not touch the intent flags")
	}
}

func TestInputSampledOnEvenFrames(t *testing.T) {
	g := newTestGame(1)
	place(g, KindO, 4, 5)
	g.KeyDown(core.ActionLeft)

	g.Step() // frame 0
	if g.piece.Pos.X != 3 {
		t.Fatalf("x = %d after first tick, expected 3", g.piece.Pos.X)
	}
	g.Step() // frame 1
	if g.piece.Pos.X != 3 {
		t.Errorf("x = %d after odd tick, expected no move", g.piece.Pos.X)
	}
	g.Step() // frame 2
	if g.piece.Pos.X != 2 {
		t.Errorf("x = %d after third tick, expected 2", g.piece.Pos.X)
	}
}

func TestRotationConsumedOnce(t *testing.T) {
	g := newTestGame(1)
	place(g, KindT, 3, 5)
	g.frame = 1
	g.KeyDown(core.ActionRotate)

	g.Step() // odd frame, still pending
	if !g.Input().Rotate {
		t.Fatal("rotation consumed on an odd frame")
	}

	g.Step()
	if g.Input().Rotate {
		t.Error("rotation should be cleared once consumed")
	}
	expected := [4]core.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}
	if g.piece.Offsets != expected {
		t.Errorf("Offsets = %v, expected one quarter turn %v", g.piece.Offsets, expected)
	}

	g.Step()
	g.Step()
	if g.piece.Offsets != expected {
		t.Error("a single press should rotate only once")
	}
}

func TestFallCadence(t *testing.T) {
	tests := []struct {
		name  string
		fast  bool
		steps []int // ticks needed for each successive row
	}{
		{"normal speed", false, []int{7, 6, 6}},
		{"fast drop", true, []int{3, 2, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			place(g, KindO, 4, 0)
			if tc.fast {
				g.KeyDown(core.ActionDrop)
			}

			for row, n := range tc.steps {
				for i := 0; i < n-1; i++ {
					g.Step()
				}
				if g.piece.Pos.Y != row {
					t.Fatalf("y = %d one tick early, expected %d", g.piece.Pos.Y, row)
				}
				g.Step()
				if g.piece.Pos.Y != row+1 {
					t.Fatalf("y = %d, expected %d", g.piece.Pos.Y, row+1)
				}
			}
		})
	}
}

func TestLockClearsCompletedRow(t *testing.T) {
	g := newTestGame(1)
	for x := 0; x < 10; x++ {
		if x < 3 || x > 6 {
			g.board.Set(x, 19, KindZ)
		}
	}
	g.board.Set(0, 17, KindS)
	g.board.Set(9, 10, KindS)
	place(g, KindI, 3, 19)
	g.frame = 6

	before := g.board.Count()
	res := g.Step()

	if !res.Locked {
		t.Fatal("Locked = false, expected the piece to lock on the floor")
	}
	if res.Reset {
		t.Fatal("Reset = true, expected normal play")
	}
	if !slices.Equal(res.Cleared, []int{19}) {
		t.Errorf("Cleared = %v, expected [19]", res.Cleared)
	}
	if got := g.board.Count(); got != before+4-10 {
		t.Errorf("Count() = %d, expected %d", got, before+4-10)
	}
	if !g.board.IsOccupied(0, 18) || !g.board.IsOccupied(9, 11) {
		t.Error("rows above the cleared row should shift down by one")
	}
	if g.board.IsRowComplete(19) {
		t.Error("bottom row should hold the prior row 18")
	}
	if res.State.Lines != 1 || res.State.Pieces != 1 {
		t.Errorf("State = %+v, expected 1 line and 1 piece", res.State)
	}
	if g.piece.Pos.Y != 0 {
		t.Error("a new piece should spawn after the lock")
	}
}

func TestRowsCheckedInCellOrder(t *testing.T) {
	tests := []struct {
		name    string
		offsets [4]core.Point
		pos     core.Point
		cleared []int
		count   int
	}{
		{
			// Top-down enumeration clears both rows
			name:    "top first",
			offsets: [4]core.Point{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}},
			pos:     core.Point{X: -3, Y: 16},
			cleared: []int{18, 19},
			count:   2,
		},
		{
			// Bottom-up enumeration: collapsing row 19 moves the other
			// complete row onto 19, which has already been checked.
			name:    "bottom first",
			offsets: [4]core.Point{{X: 0, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			pos:     core.Point{X: 0, Y: 16},
			cleared: []int{19},
			count:   12,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			for x := 1; x < 10; x++ {
				g.board.Set(x, 18, KindT)
				g.board.Set(x, 19, KindT)
			}
			g.piece = &Piece{Kind: KindI, Offsets: tc.offsets, BoxSize: 4, Pos: tc.pos}
			g.frame = 6

			res := g.Step()

			if !slices.Equal(res.Cleared, tc.cleared) {
				t.Errorf("Cleared = %v, expected %v", res.Cleared, tc.cleared)
			}
			if g.board.Count() != tc.count {
				t.Errorf("Count() = %d, expected %d", g.board.Count(), tc.count)
			}
		})
	}
}

func TestSpawnOverlapResets(t *testing.T) {
	g := newTestGame(1)
	// Every shape has a cell in row 0 within columns 3..6 when it spawns
	for x := 3; x <= 6; x++ {
		g.board.Set(x, 0, KindJ)
	}
	place(g, KindO, 0, 18)
	g.frame = 6

	res := g.Step()

	if !res.Reset {
		t.Fatal("Reset = false, expected game over when the new piece overlaps")
	}
	if g.board.Count() != 0 {
		t.Errorf("board has %d cells after reset, expected 0", g.board.Count())
	}
	if res.State.Resets != 1 {
		t.Errorf("Resets = %d, expected 1", res.State.Resets)
	}
}

func TestSpillAboveTopResets(t *testing.T) {
	g := newTestGame(1)
	g.board.Set(4, 1, KindL)
	place(g, KindO, 4, -1)
	g.frame = 6

	res := g.Step()

	if !res.Locked || !res.Reset {
		t.Fatalf("Locked = %v, Reset = %v, expected both", res.Locked, res.Reset)
	}
	if g.board.Count() != 0 {
		t.Errorf("board has %d cells after reset, expected 0", g.board.Count())
	}
	if g.frame != 1 {
		t.Errorf("frame = %d after reset tick, expected 1", g.frame)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script end up identical
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	script := func(g *Game, i int) {
		switch i % 40 {
		case 0:
			g.KeyDown(core.ActionLeft)
		case 5:
			g.KeyUp(core.ActionLeft)
			g.KeyDown(core.ActionRotate)
		case 12:
			g.KeyDown(core.ActionRight)
		case 20:
			g.KeyUp(core.ActionRight)
			g.KeyDown(core.ActionDrop)
		case 35:
			g.KeyUp(core.ActionDrop)
		}
	}

	for i := 0; i < 3000; i++ {
		script(g1, i)
		script(g2, i)
		g1.Step()
		g2.Step()
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Pieces == 0 {
		t.Error("expected pieces to lock over 3000 ticks")
	}
}

func TestBoardInvariantsUnderPlay(t *testing.T) {
	g := newTestGame(99)
	for i := 0; i < 5000; i++ {
		if i%3 == 0 {
			g.KeyDown(core.ActionRotate)
		}
		if i%50 == 0 {
			g.KeyDown(core.ActionDrop)
		}
		g.Step()

		if !g.piece.IsFullyInBounds(g.board) {
			t.Fatalf("tick %d: falling piece left the board at %+v", i, g.piece.Pos)
		}
		if g.piece.OverlapsSettled(g.board) {
			t.Fatalf("tick %d: falling piece overlaps settled cells", i)
		}
	}
}
