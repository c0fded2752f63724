package main

import "github.com/kartoza/kartoza-clip-studio/cmd"

// Version is set via ldflags during build
// Default shows next development version (last release + 1)
var version = "0.3.1-dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
