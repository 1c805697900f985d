package main

import "github.com/mcoot/gameutils/internal/cli"

func main() {
	cli.Execute()
}
