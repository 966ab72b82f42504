package main

import (
	"github.com/robotalks/bringup/pkg/board"
	"github.com/robotalks/bringup/pkg/cli/sh"

	_ "github.com/robotalks/bringup/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	board.SetupFlags()
}

func main() {
	sh.Main()
}
