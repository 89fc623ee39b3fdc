// colourtheory - Colour harmony evaluator
//
// colourtheory scores a primary and secondary colour pair against
// complementary, analogous, split-complementary and tetradic theories.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colourtheory/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewEvaluatorCmd()))
}
