package universe

import (
	"fmt"
	"math/rand"
)

//walkerSprite is the pattern spawned by the walker, offsets are {row, column} relative to the drawn cell
var walkerSprite = [][2]int{{0, 0}, {0, -1}, {0, -2}, {-1, -2}, {-2, -1}}

/*
	Walker injects additional live cells after a tick
	it is a separate pass over the new generation: each cell takes one draw and spawns
	the walker sprite around itself when the draw is below the probability
*/
type Walker struct {
	probability float64
	rnd         *rand.Rand
}

//NewWalker creates the walker, probability must be in [0, 1]
func NewWalker(probability float64, seed int64) (*Walker, error) {
	if !(probability >= 0 && probability <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, probability)
	}
	return &Walker{probability: probability, rnd: rand.New(rand.NewSource(seed))}, nil
}

func (w *Walker) Probability() float64 {
	return w.probability
}

//Walk runs the walker pass over the universe and returns the number of spawned sprites
func (w *Walker) Walk(u *Universe) (spawned int) {
	if w.probability == 0 {
		return 0
	}
	copy(u.next, u.cells)
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if w.rnd.Float64() >= w.probability {
				continue
			}
			spawned++
			for _, d := range walkerSprite {
				u.next[u.wrappedIndex(row+d[0], col+d[1])] = Alive
			}
		}
	}
	u.cells, u.next = u.next, u.cells
	return
}
