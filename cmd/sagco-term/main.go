// Command sagco-term runs the SAGCO LIVE boot sequence against an in-memory
// console and renders the resulting cell grid in the current terminal, one
// terminal cell per console cell.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"

	"sagco/banner"
	"sagco/device/tty"
	"sagco/device/video/console"
)

const (
	columns = 80
	rows    = 25
)

func main() {
	cfg := parseFlags()

	buf := console.NewBuffer(columns, rows)
	term := tty.NewVT(tty.DefaultTabWidth, tty.OverflowWrap)
	term.AttachTo(buf)
	term.Clear()

	if err := banner.Render(term, cfg); err != nil {
		log.Fatalf("render banner: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	draw(screen, buf)

	// The reference program halts forever once the banner is out. Stay on
	// screen until interrupted; no other input is interpreted.
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, buf)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				return
			}
		}
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

// draw copies the console cell grid onto the tcell screen.
func draw(screen tcell.Screen, buf *console.Buffer) {
	palette := buf.Palette()
	w, h := buf.Dimensions()

	for y := uint16(0); y < h; y++ {
		for x := uint16(0); x < w; x++ {
			ch, fg, bg := buf.CellAt(x, y)
			style := tcell.StyleDefault.
				Foreground(paletteColor(palette, fg)).
				Background(paletteColor(palette, bg))
			screen.SetContent(int(x), int(y), rune(ch), nil, style)
		}
	}

	if x, y, visible := buf.Cursor(); visible {
		screen.ShowCursor(int(x), int(y))
	}

	screen.Show()
}

func paletteColor(palette color.Palette, index uint8) tcell.Color {
	rgba := palette[index].(color.RGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
