package universe

import "time"

//Options represents the Simulation's configurable options
type Options struct {
	Width             int
	Height            int
	Interval          time.Duration
	MaxSteps          int
	Message           string  //decorative message stamped at start, empty to skip
	WalkerProbability float64 //0 disables the random walker
	Seed              int64   //seed for the walker and the random fill
	StopWhenStable    bool    //finish when all cells are dead or the generation stops changing
}

//Status represents the status of the Simulation at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Area is a snapshot of the universe's field
type Area struct {
	Width  int
	Height int
	Cells  []Cell
}

//Alive reports whether the cell at x, y was alive when the snapshot was taken
func (a Area) Alive(x int, y int) bool {
	return a.Cells[y*a.Width+x] == Alive
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 320
	DefHeight             = 80
	DefMessage            = "It works!"
)

const (
	RunningStateManual   = RunningState(0x0)
	RunningStateStep     = RunningState(0x1)
	RunningStateRun      = RunningState(0x2)
	RunningStateFinished = RunningState(0x3)
)

var DefaultOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
	Message:  DefMessage,
}

func (s RunningState) String() string {
	switch s {
	case RunningStateManual:
		return "waiting"
	case RunningStateStep:
		return "step"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}
