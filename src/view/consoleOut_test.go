package view

import (
	"bytes"
	"lifetext/src/universe"
	"strings"
	"sync"
	"testing"
	"time"
)

//syncBuffer is written by the simulation loop and read by the test
type syncBuffer struct {
	b bytes.Buffer
	sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.Lock()
	defer s.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.Lock()
	defer s.Unlock()
	return s.b.String()
}

func newSimulation(t *testing.T, maxSteps int) (*universe.Simulation, chan universe.Status) {
	t.Helper()
	o := universe.DefaultOptions
	o.Width, o.Height = 5, 5
	o.Interval = 0
	o.MaxSteps = maxSteps
	o.Message = ""
	stateCh := make(chan universe.Status, 10)
	s, err := universe.NewSimulation(&o, stateCh)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s, stateCh
}

func waitFinished(t *testing.T, stateCh chan universe.Status) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case st := <-stateCh:
			if st.RunningMode == universe.RunningStateFinished {
				return
			}
		case <-timeout:
			t.Fatal("timeout waiting for the simulation to finish")
		}
	}
}

func TestConsoleOutRegisterPrintsConfiguration(t *testing.T) {
	s, _ := newSimulation(t, 3)
	var out syncBuffer
	s.RegisterViewer(NewConsoleOutTo(&out, false, false))
	got := out.String()
	for _, want := range []string{"Running configuration:", "Dimension: 5 x 5", "Max iterations: 3 steps"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output %q does not contain %q", got, want)
		}
	}
}

func TestConsoleOutPrintsFrames(t *testing.T) {
	s, stateCh := newSimulation(t, 2)
	var out syncBuffer
	v := NewConsoleOutTo(&out, true, false)
	s.RegisterViewer(v)
	if err := s.SettleTemplate("blinker"); err != nil {
		t.Fatal(err)
	}
	v.Start()
	s.Run()
	waitFinished(t, stateCh)
	//the last refresh runs right after the finished state is published
	s.Close()

	got := out.String()
	vertical := "     \n  ◼  \n  ◼  \n  ◼  \n     \n"
	horizontal := "     \n     \n ◼◼◼ \n     \n     \n"
	if !strings.Contains(got, "Generation 1\n"+vertical) {
		t.Fatalf("generation 1 frame missing in %q", got)
	}
	if !strings.Contains(got, "Generation 2\n"+horizontal) {
		t.Fatalf("generation 2 frame missing in %q", got)
	}
	if !strings.Contains(got, "Finished:") || !strings.Contains(got, "Last iteration: 2") {
		t.Fatalf("finish summary missing in %q", got)
	}
}

func TestConsoleOutWithoutFrames(t *testing.T) {
	s, stateCh := newSimulation(t, 1)
	var out syncBuffer
	v := NewConsoleOutTo(&out, false, false)
	s.RegisterViewer(v)
	v.Start()
	s.Run()
	waitFinished(t, stateCh)
	s.Close()
	if strings.Contains(out.String(), "Generation") {
		t.Fatalf("frames printed while disabled: %q", out.String())
	}
}
