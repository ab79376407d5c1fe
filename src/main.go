package main

import (
	"errors"
	"fmt"
	"lifetext/src/font"
	"lifetext/src/universe"
	"lifetext/src/view"
	"log"
	"strings"
	"time"

	"github.com/integrii/flaggy"
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	printFrames bool
	colors      bool
	template    string
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the simulation status
	}

	var seeders []universe.Seeder
	if uo.Message != "" {
		seeders = append(seeders, font.Message(uo.Message))
	}

	s, err := universe.NewSimulation(uo, stateCh, seeders...)
	if errors.Is(err, universe.ErrInvalidDimensions) {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if err != nil {
		log.Fatalln(err)
	}

	var v universe.Viewer
	if eo.interactive {
		v = view.NewViewTerminal(uo.Seed)
	} else {
		v = view.NewConsoleOut(eo.printFrames, eo.colors)
	}
	s.RegisterViewer(v)

	if eo.randomData {
		s.SettleWithRandomData()
	} else if eo.template != "" {
		if err := s.SettleTemplate(eo.template); err != nil {
			s.Close()
			flaggy.ShowHelpAndExit(err.Error())
		}
	}

	//the interactive viewer blocks until the user quits
	v.Start()
	if eo.interactive {
		s.Close()
		return
	}

	startTime := time.Now()
	s.Run()
	for st := range stateCh {
		if st.RunningMode == universe.RunningStateFinished {
			totalTime := time.Since(startTime).Round(time.Millisecond)
			fmt.Printf("Finished, iteration is: %v, total running time: %v\n", st.IterationNum, totalTime)
			break
		}
	}
	s.Close()
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultOptions
	uo = &o
	templateNames := make([]string, 0, len(universe.Templates))
	for _, t := range universe.Templates {
		templateNames = append(templateNames, t.Name)
	}
	eo = &EnvOptions{colors: true}
	flaggy.SetName("lifetext")
	flaggy.SetDescription("Toroidal Game of Life rendered as text")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 runs until stopped")
	flaggy.String(&uo.Message, "m", "message", "Message stamped into the field at start, empty to skip")
	flaggy.Float64(&uo.WalkerProbability, "w", "walker", "Probability of the random walker spawning per cell and step, 0 disables it")
	flaggy.Int64(&uo.Seed, "", "seed", "Seed for the random walker and the random data")
	flaggy.Bool(&uo.StopWhenStable, "", "stable", "Finish when the field dies out or stops changing")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.template, "t", "template", "Settle with the template ["+strings.Join(templateNames, "|")+"]")
	flaggy.Bool(&eo.printFrames, "p", "print", "Print every frame")
	flaggy.Bool(&eo.colors, "", "colors", "Colorize the console output")

	flaggy.Parse()

	if uo.WalkerProbability < 0 || uo.WalkerProbability > 1 {
		flaggy.ShowHelpAndExit("walker probability must be in [0, 1]")
	}

	return
}
