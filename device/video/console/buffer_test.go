package console

import (
	"image/color"
	"testing"
)

func TestBufferInitialContents(t *testing.T) {
	buf := NewBuffer(80, 25)

	if w, h := buf.Dimensions(); w != 80 || h != 25 {
		t.Fatalf("expected buffer dimensions to be 80x25; got %dx%d", w, h)
	}

	defaultFg, defaultBg := buf.DefaultColors()
	for y := uint16(0); y < 25; y++ {
		for x := uint16(0); x < 80; x++ {
			ch, fg, bg := buf.CellAt(x, y)
			if ch != ' ' || fg != defaultFg || bg != defaultBg {
				t.Fatalf("expected cell (%d, %d) to be an empty char with the default colors; got ch: %q, fg: %d, bg: %d", x, y, ch, fg, bg)
			}
		}
	}
}

func TestBufferWriteReadBack(t *testing.T) {
	buf := NewBuffer(80, 25)

	buf.Write('!', Yellow, Blue, 3, 2)

	if ch, fg, bg := buf.CellAt(3, 2); ch != '!' || fg != Yellow || bg != Blue {
		t.Fatalf("expected cell (3, 2) to contain ch: '!', fg: %d, bg: %d; got ch: %q, fg: %d, bg: %d", Yellow, Blue, ch, fg, bg)
	}

	// Off-screen writes are a no-op; off-screen reads report an empty cell.
	buf.Write('!', Yellow, Blue, 80, 25)
	if ch, fg, bg := buf.CellAt(80, 25); ch != ' ' || fg != LightCyan || bg != Black {
		t.Fatalf("expected off-screen read to report an empty cell; got ch: %q, fg: %d, bg: %d", ch, fg, bg)
	}
}

func TestBufferFill(t *testing.T) {
	buf := NewBuffer(80, 25)

	buf.Fill(10, 10, 5, 2, White, Red)

	for y := uint16(0); y < 25; y++ {
		for x := uint16(0); x < 80; x++ {
			ch, fg, bg := buf.CellAt(x, y)
			inRect := x >= 10 && x < 15 && y >= 10 && y < 12

			if inRect && (ch != ' ' || fg != White || bg != Red) {
				t.Fatalf("expected cell (%d, %d) to be filled; got ch: %q, fg: %d, bg: %d", x, y, ch, fg, bg)
			}
			if !inRect && bg != Black {
				t.Fatalf("expected cell (%d, %d) to be left untouched; got bg: %d", x, y, bg)
			}
		}
	}
}

func TestBufferScroll(t *testing.T) {
	buf := NewBuffer(80, 25)

	buf.Write('A', White, Black, 0, 1)
	buf.Scroll(ScrollDirUp, 1)

	if ch, _, _ := buf.CellAt(0, 0); ch != 'A' {
		t.Fatalf("expected scroll up to move 'A' to row 0; got %q", ch)
	}

	buf.Scroll(ScrollDirDown, 1)
	if ch, _, _ := buf.CellAt(0, 1); ch != 'A' {
		t.Fatalf("expected scroll down to move 'A' back to row 1; got %q", ch)
	}
}

func TestBufferCursor(t *testing.T) {
	buf := NewBuffer(80, 25)

	if _, _, visible := buf.Cursor(); visible {
		t.Fatal("expected cursor to be invisible before the first SetCursor call")
	}

	buf.SetCursor(7, 9)
	if x, y, visible := buf.Cursor(); !visible || x != 7 || y != 9 {
		t.Fatalf("expected cursor to be visible at (7, 9); got (%d, %d), visible: %t", x, y, visible)
	}

	// Off-screen moves are a no-op.
	buf.SetCursor(80, 25)
	if x, y, _ := buf.Cursor(); x != 7 || y != 9 {
		t.Fatalf("expected off-screen SetCursor to be a no-op; got (%d, %d)", x, y)
	}
}

func TestBufferSetPaletteColor(t *testing.T) {
	buf := NewBuffer(80, 25)

	rgba := color.RGBA{R: 255, G: 127, B: 0}
	buf.SetPaletteColor(1, rgba)

	if got := buf.Palette()[1]; got != rgba {
		t.Fatalf("expected color at index 1 to be:\n%v\ngot:\n%v", rgba, got)
	}

	// Out of range indexes are a no-op.
	buf.SetPaletteColor(50, rgba)
}
