// Command sagco-desktop runs the SAGCO LIVE boot sequence against an
// in-memory console and renders the resulting cell grid in a window, drawing
// each cell as a background quad plus a glyph.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"sagco/banner"
	"sagco/device/tty"
	"sagco/device/video/console"
)

const (
	columns = 80
	rows    = 25

	cellWidth  = 8
	cellHeight = 16
)

// Game renders the console cell grid. The boot sequence runs once before the
// window opens; nothing mutates the buffer afterwards.
type Game struct {
	buf  *console.Buffer
	face text.Face
}

func (g *Game) Update() error { return nil }

func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.buf.Palette()
	w, h := g.buf.Dimensions()

	for y := uint16(0); y < h; y++ {
		for x := uint16(0); x < w; x++ {
			ch, fg, bg := g.buf.CellAt(x, y)
			px, py := float64(x)*cellWidth, float64(y)*cellHeight

			if bg != console.Black {
				vector.DrawFilledRect(screen, float32(px), float32(py), cellWidth, cellHeight, palette[bg], false)
			}
			if ch == ' ' {
				continue
			}

			op := &text.DrawOptions{}
			op.GeoM.Translate(px, py+1)
			op.ColorScale.ScaleWithColor(palette[fg])
			text.Draw(screen, string(rune(ch)), g.face, op)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return columns * cellWidth, rows * cellHeight
}

func main() {
	cfg := parseFlags()

	buf := console.NewBuffer(columns, rows)
	term := tty.NewVT(tty.DefaultTabWidth, tty.OverflowWrap)
	term.AttachTo(buf)
	term.Clear()

	if err := banner.Render(term, cfg); err != nil {
		log.Fatalf("render banner: %v", err)
	}

	ebiten.SetWindowSize(columns*cellWidth*2, rows*cellHeight*2)
	ebiten.SetWindowTitle("SAGCO LIVE v0.1.0")

	game := &Game{
		buf:  buf,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// parseFlags maps the color override flags onto a banner Config.
func parseFlags() banner.Config {
	var (
		frame  = flag.String("frame-color", "", "color of the banner frame rules")
		title  = flag.String("title-color", "", "color of the banner title lines")
		info   = flag.String("info-color", "", "color of the info block")
		status = flag.String("status-color", "", "color of the boot checklist block")
		footer = flag.String("footer-color", "", "color of the footer line")
		bg     = flag.String("background-color", "", "background color")
	)
	flag.Parse()

	cfg := banner.DefaultConfig()
	for _, override := range []struct {
		name string
		dst  *uint8
	}{
		{*frame, &cfg.Frame},
		{*title, &cfg.Title},
		{*info, &cfg.Info},
		{*status, &cfg.Status},
		{*footer, &cfg.Footer},
		{*bg, &cfg.Background},
	} {
		if override.name == "" {
			continue
		}

		index, ok := banner.ColorByName(override.name)
		if !ok {
			log.Fatalf("unknown color name %q", override.name)
		}
		*override.dst = index
	}

	return cfg
}
