package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockjump/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the grid and avatar state")
	autopilot := flag.Bool("autopilot", false, "drive the avatar from the prefab's autopilot script")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	prefabDir := flag.String("prefab", prefabs.Dir, "directory whose prefabs override the embedded ones")
	flag.Parse()

	prefabs.Dir = *prefabDir

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("blockjump")

	game, err := NewGame(Options{Debug: *debug, Autopilot: *autopilot, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
