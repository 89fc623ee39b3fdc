// colourgen - Colour combination generator
//
// colourgen derives complementary, analogous, monochromatic, triadic,
// tetradic, split-complementary and seasonal combinations from a base colour.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colourtheory/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewGeneratorCmd(nil)))
}
