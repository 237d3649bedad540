package session

import (
	"fmt"
	"strings"
)

const bannerWidth = 50

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"

	ansiClearScreen = "\x1b[2J\x1b[H"
)

func (s *Session) clearScreen() {
	if s.opts.ClearScreen {
		fmt.Fprint(s.out, ansiClearScreen)
	}
}

func (s *Session) banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(s.out, "\n"+rule)
	fmt.Fprintln(s.out, s.colorize(title))
	fmt.Fprintln(s.out, rule)
}

func (s *Session) renderMenu() {
	s.banner("Welcome to your Personal Library Manager!")
	fmt.Fprintln(s.out, "1. Add a book")
	fmt.Fprintln(s.out, "2. Remove a book")
	fmt.Fprintln(s.out, "3. Search for a book")
	fmt.Fprintln(s.out, "4. Display all books")
	fmt.Fprintln(s.out, "5. Display statistics")
	fmt.Fprintln(s.out, "6. Exit")
	fmt.Fprintln(s.out, strings.Repeat("=", bannerWidth))
}

func (s *Session) colorize(text string) string {
	if !s.opts.Colorize {
		return text
	}
	return ansiBold + ansiCyan + text + ansiReset
}
