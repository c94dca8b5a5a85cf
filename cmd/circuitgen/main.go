package main

import (
	"github.com/panyam/circuitgen/cmd/circuitgen/commands"
)

func main() {
	commands.Execute()
}
