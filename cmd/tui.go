package cmd

import (
	"github.com/kartoza/kartoza-clip-studio/internal/tui"
)

func runTUI() error {
	return tui.Run()
}
