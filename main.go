package main

import (
	"enum-registry/cmd"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	_, _ = maxprocs.Set()
	cmd.Execute()
}
