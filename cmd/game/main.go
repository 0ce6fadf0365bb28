package main

import "worldsporta/cmd/game/commands"

func main() {
	commands.Execute()
}
