package main

import "github.com/katalvlaran/minimat/internal/cli"

func main() {
	cli.Execute()
}
