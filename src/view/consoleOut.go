package view

import (
	"fmt"
	"io"
	"lifetext/src/universe"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut is the non-interactive viewer, prints the progress and optionally every frame
type ConsoleOut struct {
	s           *universe.Simulation
	out         io.Writer
	startTime   time.Time
	printFrames bool
	au          aurora.Aurora
}

func NewConsoleOut(printFrames bool, colors bool) *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, printFrames, colors)
}

func NewConsoleOutTo(out io.Writer, printFrames bool, colors bool) *ConsoleOut {
	return &ConsoleOut{out: out, printFrames: printFrames, au: aurora.NewAurora(colors)}
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if c.printFrames && st.RunningMode != universe.RunningStateStep {
		_, _ = fmt.Fprintf(c.out, "%s %v\n%s", c.au.Cyan("Generation"), st.IterationNum, c.s.Frame())
	}
	if st.RunningMode == universe.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		_, _ = fmt.Fprintln(c.out, c.au.Red("\nFinished:"))
		c.printHashData(resultData)
	} else if st.RunningMode == universe.RunningStateRun {
		if st.IterationNum%10 == 0 {
			_, _ = fmt.Fprintf(c.out, "  Iterations done: %v\n", st.IterationNum)
		}
	}
}

func (c *ConsoleOut) Register(s *universe.Simulation) {
	c.s = s
	o := c.s.Options()
	_, _ = fmt.Fprintln(c.out, c.au.Green("Running configuration:"))
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Interval":       o.Interval,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
		"Message":        fmt.Sprintf("%q", o.Message),
		"Walker":         o.WalkerProbability,
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.out, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.out, "  %s: %v\n", c.au.Green(propName), d[propName])
	}
}
