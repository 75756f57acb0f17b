package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Wayfarer.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient, teal to violet.
	s1 := termenv.String(" _    _                __                     ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("| |  | | __ _ _   _   / _| __ _ _ __ ___ _ __ ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String("| |/\\| |/ _` | | | | | |_ / _` | '__/ _ \\ '__|").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String("\\  /\\  / (_| | |_| | |  _| (_| | | |  __/ |   ").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String(" \\/  \\/ \\__,_|\\__, | |_|  \\__,_|_|  \\___|_|   ").Foreground(p.Color("#818cf8"))
	s6 := termenv.String("              |___/                           ").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
