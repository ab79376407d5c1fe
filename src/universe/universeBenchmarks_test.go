package universe

import (
	"fmt"
	"testing"
)

var (
	testTemplate = Template{"ts1", "", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}

	sizes = [][2]int{{40, 15}, {200, 200}, {1000, 500}}
)

func Benchmark_Tick(b *testing.B) {
	for _, sz := range sizes {
		b.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(b *testing.B) {
			u, err := New(sz[0], sz[1], testTemplate.Settler())
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}

func Benchmark_Render(b *testing.B) {
	u, err := New(200, 200, testTemplate.Settler())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Render()
	}
}

func Benchmark_Walker(b *testing.B) {
	u, err := New(200, 200)
	if err != nil {
		b.Fatal(err)
	}
	w, err := NewWalker(0.001, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Walk(u)
	}
}

func Benchmark_SimulationStep(b *testing.B) {
	o := DefaultOptions
	o.Interval = 0
	o.Width = 200
	o.Height = 200
	o.MaxSteps = 0
	o.Message = ""
	stateCh := make(chan Status, 10)
	s, err := NewSimulation(&o, stateCh)
	if err != nil {
		b.Fatal(err)
	}
	s.AddTemplate(testTemplate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		<-stateCh //wait for finish
		if err := s.SettleTemplate("ts1"); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		s.Step()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateManual {
				break
			}
		}
	}
	s.Close()
}
