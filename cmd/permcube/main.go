// permcube - CLI for applying, analysing and solving cube move sequences.
package main

import (
	"github.com/SeamusWaldron/permcube/internal/cli"
)

func main() {
	cli.Execute()
}
