package main

import (
	"github.com/midbel/textkit/internal/cli"
)

func main() {
	cli.Main(cli.NewCatCommand)
}
