package universe

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

//Viewer is the interface to any Viewer - the object who can display simulation data or control the simulation
type Viewer interface {
	Refresh()
	Register(s *Simulation)
	Start()
}

//Simulation drives the Universe: it owns the grid exclusively and executes all commands
//one by one in its main loop goroutine, viewers only get snapshots
type Simulation struct {
	options Options
	state   struct {
		Status
		frame string
		area  Area
		sync.Mutex
	}
	u         *Universe
	walker    *Walker
	rnd       *rand.Rand
	stateCh   chan Status
	views     []Viewer
	templates struct {
		m map[string]Template
		sync.Mutex
	}
	controlCh chan func()
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

//NewSimulation creates the universe described by the options and starts the main loop
//stateCh may be nil, otherwise each running state switch is written to it
func NewSimulation(o *Options, stateCh chan Status, seeders ...Seeder) (*Simulation, error) {
	if o == nil {
		o = &DefaultOptions
	}
	u, err := New(o.Width, o.Height, seeders...)
	if err != nil {
		return nil, fmt.Errorf("create universe: %w", err)
	}
	s := &Simulation{
		options:   *o,
		u:         u,
		rnd:       rand.New(rand.NewSource(o.Seed)),
		stateCh:   stateCh,
		controlCh: make(chan func(), 1),
		done:      make(chan struct{}),
	}
	if o.WalkerProbability > 0 {
		if s.walker, err = NewWalker(o.WalkerProbability, o.Seed); err != nil {
			return nil, err
		}
	}
	s.templates.m = make(map[string]Template, len(Templates))
	for _, t := range Templates {
		s.templates.m[t.Name] = t
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.snapshot()
	go s.mainLoop()
	return s, nil
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (s *Simulation) AddTemplate(tmpl Template) {
	s.templates.Lock()
	s.templates.m[tmpl.Name] = tmpl
	s.templates.Unlock()
}

//Settle settles the universe with data, returns immediately
//vc - array of x,y coordinates
func (s *Simulation) Settle(vc [][]int) {
	s.Apply(Template{Coordinates: vc}.Settler())
}

//SettleTemplate populates the universe with the seeding template, returns immediately
func (s *Simulation) SettleTemplate(name string) error {
	s.templates.Lock()
	tmpl, ok := s.templates.m[name]
	s.templates.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	s.Apply(tmpl.Settler())
	return nil
}

//Apply runs the seeder against the universe inside the main loop, returns immediately
func (s *Simulation) Apply(seeder Seeder) {
	if seeder == nil {
		return
	}
	s.send(func() {
		seeder(s.u)
		s.updateLiveCells()
		s.snapshot()
		s.refreshView()
	})
}

//SettleWithRandomData clears the universe and populates it with random data, returns immediately
func (s *Simulation) SettleWithRandomData() {
	s.send(func() {
		if m := s.mode(); m != RunningStateManual && m != RunningStateFinished {
			return
		}
		s.clear()
		w, h := s.u.Width(), s.u.Height()
		for i := 0; i < w*h; i++ {
			s.u.Set(s.rnd.Intn(h), s.rnd.Intn(w), Alive)
		}
		s.updateLiveCells()
		s.snapshot()
		s.refreshView()
	})
}

//InverseCell inverses the cell state at point x, y, returns immediately
func (s *Simulation) InverseCell(x int, y int) {
	if x < 0 || y < 0 || x >= s.options.Width || y >= s.options.Height {
		return
	}
	s.send(func() {
		s.u.Toggle(y, x)
		s.updateLiveCells()
		s.snapshot()
		s.refreshView()
	})
}

//RegisterViewer registers the viewer - the simulation will call the viewer when the state is changed
//it should be called before the simulation is started
func (s *Simulation) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the simulation's status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Status returns current simulation status represented by Status struct
func (s *Simulation) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Status
}

//Options returns current simulation configuration represented by Options struct
func (s *Simulation) Options() Options {
	return s.options
}

//Area returns the snapshot of the field taken after the last command
func (s *Simulation) Area() Area {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.area
}

//Frame returns the rendered text of the field taken after the last command
func (s *Simulation) Frame() string {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.frame
}

//Run starts the simulation, returns immediately
func (s *Simulation) Run() {
	s.send(s.run)
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (s *Simulation) Stop() {
	s.send(s.stop)
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Simulation) Step() {
	s.send(s.step)
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Simulation) Clear() {
	s.send(func() {
		s.clear()
		s.switchRunningState(RunningStateManual)
		s.refreshView()
	})
}

//Close stops the main loop and waits for it to exit
//commands sent after Close are dropped
func (s *Simulation) Close() {
	s.cancel()
	<-s.done
}

//send queues the command for the main loop, false if the simulation is closed
func (s *Simulation) send(cmd func()) bool {
	if s.ctx.Err() != nil {
		return false
	}
	select {
	case s.controlCh <- cmd:
		return true
	case <-s.ctx.Done():
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (s *Simulation) mainLoop() {
	defer close(s.done)
	for {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Simulation) mode() RunningState {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.RunningMode
}

//switchRunningState switch the state of the simulation to RunningState
//also writes the new state to the stateCh to signal upper control software
func (s *Simulation) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		select {
		case s.stateCh <- st:
		case <-s.ctx.Done():
		}
	}
}

//run starts the simulation cycle
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (s *Simulation) run() {
	if s.mode() == RunningStateRun {
		return
	}
	s.switchRunningState(RunningStateRun)
	go func() {
		for s.mode() == RunningStateRun {
			done := make(chan struct{})
			ok := s.send(func() {
				defer close(done)
				if s.mode() == RunningStateRun {
					s.step()
				}
			})
			if !ok {
				return
			}
			select {
			case <-done:
			case <-s.ctx.Done():
				return
			}
			if s.options.Interval > 0 {
				select {
				case <-time.After(s.options.Interval):
				case <-s.ctx.Done():
					return
				}
			}
		}
	}()
}

//stop stops the simulation running cycle
func (s *Simulation) stop() {
	if s.mode() == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step does one generation for the entire universe
func (s *Simulation) step() {
	rm := s.mode()
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	s.switchRunningState(RunningStateStep)

	start := time.Now()
	s.u.Tick()
	if s.walker != nil {
		s.walker.Walk(s.u)
	}
	elapsed := time.Since(start)

	prev := s.Frame()
	s.state.Lock()
	s.state.IterationNum++
	s.state.IterationTime = elapsed
	iter := s.state.IterationNum
	s.state.Unlock()
	live := s.updateLiveCells()
	changed := s.snapshot() != prev

	finished := s.options.MaxSteps != 0 && iter >= s.options.MaxSteps
	if s.options.StopWhenStable && (live == 0 || !changed) {
		finished = true
	}
	if finished {
		s.switchRunningState(RunningStateFinished)
	} else {
		s.switchRunningState(rm)
	}
	s.refreshView()
}

//clear clears the universe data, reset all counters
func (s *Simulation) clear() {
	s.u.Clear()
	s.state.Lock()
	s.state.IterationNum = 0
	s.state.LiveCells = 0
	s.state.IterationTime = 0
	s.state.RunningMode = RunningStateManual
	s.state.Unlock()
	s.snapshot()
}

func (s *Simulation) updateLiveCells() int {
	live := s.u.LiveCells()
	s.state.Lock()
	s.state.LiveCells = live
	s.state.Unlock()
	return live
}

//snapshot stores the rendered frame and the field copy for the viewers
func (s *Simulation) snapshot() string {
	frame := s.u.Render()
	area := Area{Width: s.u.Width(), Height: s.u.Height(), Cells: s.u.Cells()}
	s.state.Lock()
	s.state.frame = frame
	s.state.area = area
	s.state.Unlock()
	return frame
}

//refreshView calls Refresh event for all registered views
func (s *Simulation) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
