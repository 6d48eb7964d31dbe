package display

import (
	"fmt"
	"os"

	"github.com/backmassage/labbench/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _          _     _                     _
| |    __ _| |__ | |__   ___ _ __   ___| |__
| |   / _`+"`"+` | '_ \| '_ \ / _ \ '_ \ / __| '_ \
| |__| (_| | |_) | |_) |  __/ | | | (__| | | |
|_____\__,_|_.__/|_.__/ \___|_| |_|\___|_| |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
