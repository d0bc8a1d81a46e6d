package main

import (
	"access-log-analyzer/cmd/analyzer/commands"
)

func main() {
	commands.Execute()
}
