// Command rangekit applies range adaptors to sequences read from a YAML document.
//
// The document is read from the standard input:
//
//	sequences:
//	  - [a, b, c]
//	  - [x, y]
//
// and the result is written to the standard output as YAML.
//
//	echo '{sequences: [[1, 2, 3], [4, 5]]}' | rangekit product
//	echo '{sequences: [[1, 2, 3, 4, 5]]}' | rangekit chunk -n 2
package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	cli.Main(context.Background(), Mux(&logging.Logger{Out: os.Stderr}))
}

// Mux routes the subcommands.
func Mux(logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("product", ProductCommand{Logger: logger})
	m.Handle("chunk", ChunkCommand{Logger: logger})
	m.Handle("slide", SlideCommand{Logger: logger})
	m.Handle("reverse", ReverseCommand{Logger: logger})
	m.Handle("join", JoinCommand{Logger: logger})
	m.Handle("split", SplitCommand{Logger: logger})
	return &m
}
