package universe

import "testing"

func TestSettlerSkipsMalformedCoordinates(t *testing.T) {
	tmpl := Template{Name: "broken", Coordinates: [][]int{{1}, nil, {2, 3}, {}}}
	u := newUniverse(t, 5, 5, tmpl.Settler())
	expectAlive(t, u, [2]int{3, 2})
}

func TestBuiltinTemplates(t *testing.T) {
	for _, tmpl := range Templates {
		u := newUniverse(t, 8, 8, tmpl.Settler())
		if n := u.LiveCells(); n != len(tmpl.Coordinates) {
			t.Errorf("%s: %d live cells, expected %d", tmpl.Name, n, len(tmpl.Coordinates))
		}
	}
}
