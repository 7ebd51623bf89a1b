package main

import "github.com/lllinda/nps-explorer/internal/cli"

func main() {
	cli.Execute()
}
