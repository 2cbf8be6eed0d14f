package main

import "github.com/aalvaropc/lvlgrid/internal/cli"

func main() {
	cli.Execute()
}
