package universe

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

var Templates = []Template{
	{"block", "2x2 still life", [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}},
	{"blinker", "period 2 oscillator", [][]int{{1, 2}, {2, 2}, {3, 2}}},
	{"glider", "moves one cell diagonally every 4 generations", [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	{"sample", "the test sample with 3 stable patterns", [][]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}},
}

//Settler returns the seeder placing the template at the origin
func (t Template) Settler() Seeder {
	return func(u *Universe) {
		for _, v := range t.Coordinates {
			if len(v) < 2 {
				continue
			}
			u.Set(v[1], v[0], Alive)
		}
	}
}
