// Command simulate runs the physics without a window, driven by an autopilot
// script, and prints the final avatar state and an event summary. Frame rate
// only changes how elapsed time is sliced, so runs at different -fps values
// should agree.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"math"
	"slices"

	"github.com/milk9111/blockjump/levels"
	"github.com/milk9111/blockjump/prefabs"
	"github.com/milk9111/blockjump/sim"
	"github.com/milk9111/blockjump/system"
)

func main() {
	seconds := flag.Float64("seconds", 10, "simulated time to run")
	fps := flag.Float64("fps", 60, "frame rate fed to the fixed-step accumulator")
	script := flag.String("script", "autopilot.tengo", "autopilot script under prefabs/scripts")
	floor := flag.Int("floor", -1, "row to fill with stone, -1 for none")
	verbose := flag.Bool("v", false, "log every event")
	flag.Parse()

	if *fps <= 0 || *seconds < 0 {
		log.Fatalf("simulate: need -fps > 0 and -seconds >= 0")
	}

	spec, err := prefabs.LoadAvatarSpec()
	if err != nil {
		log.Fatal(err)
	}
	tuning, err := spec.Tuning(sim.DefaultTuning())
	if err != nil {
		log.Fatal(err)
	}

	world, err := sim.NewWorld(tuning, 0)
	if err != nil {
		log.Fatal(err)
	}
	if *floor >= 0 {
		world.Grid.Fill(0, *floor, tuning.GridWidth-1, *floor, levels.Stone)
	}

	src, err := prefabs.LoadScript(*script)
	if err != nil {
		log.Fatalf("simulate: load %s: %v", *script, err)
	}
	ap, err := system.NewAutopilot(*script, src)
	if err != nil {
		log.Fatal(err)
	}
	world.SetScheduler(system.NewPhysicsScheduler(ap))

	stepper := sim.NewFixedStep(tuning.PhysicsRate, tuning.MaxFrameTime)
	counts := map[sim.EventKind]int{}
	frames := int(math.Round(*seconds * *fps))
	for i := 0; i < frames; i++ {
		for n := stepper.Advance(1 / *fps); n > 0; n-- {
			world.Step(stepper.Step)
		}
		for _, evt := range world.Events().Drain() {
			counts[evt.Kind]++
			if *verbose {
				log.Printf("tick=%d %s (%d, %d) %v", evt.Tick, evt.Kind, evt.X, evt.Y, evt.Data)
			}
		}
	}

	for _, line := range world.DebugLines() {
		fmt.Println(line)
	}
	for t := levels.Stone; t < levels.NumTiles; t++ {
		if n := world.Grid.Count(t); n > 0 {
			fmt.Printf("%s tiles: %d\n", t, n)
		}
	}
	fmt.Println()
	for _, kind := range slices.Sorted(maps.Keys(counts)) {
		fmt.Printf("%-12s %d\n", kind, counts[kind])
	}
}
