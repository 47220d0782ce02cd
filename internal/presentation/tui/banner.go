package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Tagline is printed under the banner.
const Tagline = "AI App Builder: plan, build, test and launch in five phases"

var bannerLines = []struct {
	text  string
	color string
}{
	{"    _               ___       _    _     ", "#34d399"},
	{"   /_\\  _ __ _ __  / __|_  _ (_)__| |___ ", "#2dd4bf"},
	{"  / _ \\| '_ \\ '_ \\| (_ | || || / _` / -_)", "#22d3ee"},
	{" /_/ \\_\\ .__/ .__/ \\___|\\_,_||_\\__,_\\___|", "#38bdf8"},
	{"       |_|  |_|                          ", "#60a5fa"},
}

// PrintBanner writes the appguide banner to w.
// Colors follow the terminal profile, so redirected output stays plain.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  "+Tagline).Faint())
	fmt.Fprintln(w)
}
