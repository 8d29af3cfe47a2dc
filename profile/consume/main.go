// Profiling:
// go build ./profile/consume
// ./consume -mode=cpu
// go tool pprof -http=":8000" ./consume cpu.pprof

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/moonhowl/ecs"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

func main() {
	mode := flag.String("mode", "cpu", "profile to record: cpu or mem")
	rounds := flag.Int("rounds", 200, "number of rounds")
	numEntities := flag.Int("entities", 1000, "number of entities")
	numSystems := flag.Int("systems", 8, "number of consuming systems")
	flag.Parse()

	var option func(*profile.Profile)
	switch *mode {
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfileAllocs
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *mode)
		os.Exit(1)
	}

	p := profile.Start(option, profile.ProfilePath("."), profile.NoShutdownHook)
	consumed := run(*rounds, *numEntities, *numSystems)
	p.Stop()

	slog.Info("Done", slog.Int("consumed", consumed))
}

func run(rounds, numEntities, numSystems int) int {
	entities := make([]*ecs.Entity, numEntities)
	for idx := range entities {
		entities[idx] = ecs.NewEntity()
		ecs.Insert(entities[idx], velocity{X: 1, Y: float64(idx % 3)})
	}

	systems := make([]*ecs.System, numSystems)
	for idx := range systems {
		systems[idx] = ecs.NewSystem()
	}

	var consumed int

	for round := range rounds {
		// move every other entity, the rest keeps its position
		for idx, entity := range entities {
			if (idx+round)%2 != 0 {
				continue
			}

			pos, _ := ecs.Get[position](entity)
			vel, _ := ecs.Get[velocity](entity)
			ecs.Insert(entity, position{X: pos.X + vel.X, Y: pos.Y + vel.Y})
		}

		for _, system := range systems {
			for _, entity := range entities {
				if _, ok := ecs.Consume[position](entity, system.Id()); ok {
					consumed += 1
				}
			}
		}
	}

	return consumed
}
