// Package banner renders the fixed boot banner of SAGCO LIVE. The text
// content and line order are part of the boot output contract; the colors
// used for each banner section can be reparameterized through a Config.
package banner

import (
	"sagco/device/tty"
	"sagco/device/video/console"
)

const rule = "==============================================================================="

var headerLines = []string{
	"                           SAGCO LIVE v0.1.0",
	"              Sovereign AI-Governed Compute Organism",
}

var infoLines = []string{
	"  Status: KERNEL BOOTED",
	"  Owner:  Strategickhaos DAO LLC",
	"  Motto:  Ratio Ex Nihilo",
}

var statusLines = []string{
	"  [*] VGA initialized",
	"  [*] Interrupts disabled",
	"  [*] Awaiting FlameLang integration...",
}

const footerLine = "  Legion of Minds: Claude + GPT + Grok = Convergence"

// Config selects the colors used for each banner section. All values are
// console color indexes.
type Config struct {
	// Frame is the color of the horizontal rules framing the banner.
	Frame uint8

	// Title is the color of the product name and tagline.
	Title uint8

	// Info is the color of the status/owner/motto block.
	Info uint8

	// Status is the color of the boot checklist block.
	Status uint8

	// Footer is the color of the closing line.
	Footer uint8

	// Background is the background color applied to all banner cells.
	Background uint8
}

// DefaultConfig returns the banner colors used by the reference boot
// sequence.
func DefaultConfig() Config {
	return Config{
		Frame:      console.Yellow,
		Title:      console.LightCyan,
		Info:       console.White,
		Status:     console.LightGreen,
		Footer:     console.LightMagenta,
		Background: console.Black,
	}
}

// colorNames maps the color names accepted in configuration input to console
// color indexes.
var colorNames = map[string]uint8{
	"black":        console.Black,
	"blue":         console.Blue,
	"green":        console.Green,
	"cyan":         console.Cyan,
	"red":          console.Red,
	"magenta":      console.Magenta,
	"brown":        console.Brown,
	"lightgray":    console.LightGray,
	"darkgray":     console.DarkGray,
	"lightblue":    console.LightBlue,
	"lightgreen":   console.LightGreen,
	"lightcyan":    console.LightCyan,
	"lightred":     console.LightRed,
	"lightmagenta": console.LightMagenta,
	"yellow":       console.Yellow,
	"white":        console.White,
}

// ColorByName maps a color name to its console color index. The second
// return value reports whether the name is known.
func ColorByName(name string) (uint8, bool) {
	index, ok := colorNames[name]
	return index, ok
}

// ConfigFromCmdLine builds a banner Config from the boot command line
// key-value pairs, starting from the defaults. The recognized keys are
// bannerFrame, bannerTitle, bannerInfo, bannerStatus, bannerFooter and
// bannerBackground; each accepts a color name. Unknown keys and unknown
// color names are ignored.
func ConfigFromCmdLine(kv map[string]string) Config {
	cfg := DefaultConfig()

	for key, dst := range map[string]*uint8{
		"bannerFrame":      &cfg.Frame,
		"bannerTitle":      &cfg.Title,
		"bannerInfo":       &cfg.Info,
		"bannerStatus":     &cfg.Status,
		"bannerFooter":     &cfg.Footer,
		"bannerBackground": &cfg.Background,
	} {
		if name, ok := kv[key]; ok {
			if index, ok := ColorByName(name); ok {
				*dst = index
			}
		}
	}

	return cfg
}

// Render writes the boot banner to the given terminal using the colors
// selected by cfg. The terminal is expected to be attached and cleared; the
// cursor is left on the line following the banner.
func Render(term tty.Device, cfg Config) error {
	sections := []struct {
		fg    uint8
		lines []string
		blank bool
	}{
		{cfg.Frame, []string{rule}, false},
		{cfg.Title, headerLines, false},
		{cfg.Frame, []string{rule}, true},
		{cfg.Info, infoLines, true},
		{cfg.Status, statusLines, true},
		{cfg.Frame, []string{rule}, false},
		{cfg.Footer, []string{footerLine}, false},
		{cfg.Frame, []string{rule}, false},
	}

	for _, section := range sections {
		term.SetColors(section.fg, cfg.Background)
		for _, line := range section.lines {
			if err := term.WriteLine(line); err != nil {
				return err
			}
		}

		if section.blank {
			if err := term.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return nil
}
