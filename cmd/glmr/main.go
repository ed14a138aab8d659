package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/glmr/internal/termfix"

import (
	"os"

	"github.com/wahlandcase/glmr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
