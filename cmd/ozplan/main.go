package main

import (
	"github.com/ozplan/retirement-planner/internal/cli"
)

func main() {
	cli.Execute()
}
