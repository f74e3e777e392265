package main

import "tilesnake/internal/game"

func main() {
	game.RunDesktop()
}
