package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Opposite(); got != tc.expected {
				t.Errorf("Opposite() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	origin := Point{X: 5, Y: 5}

	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Point{X: 5, Y: 4}},
		{DirDown, Point{X: 5, Y: 6}},
		{DirLeft, Point{X: 4, Y: 5}},
		{DirRight, Point{X: 6, Y: 5}},
		{DirNone, Point{X: 5, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := origin.Add(tc.dir.Delta()); got != tc.expected {
				t.Errorf("origin + Delta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
	for _, d := range []Direction{DirNone, Direction(-1), Direction(42)} {
		if d.Valid() {
			t.Errorf("Direction(%d) should be invalid", int(d))
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"up", DirUp, false},
		{"D", DirDown, false},
		{" Left ", DirLeft, false},
		{"r", DirRight, false},
		{"north", DirNone, true},
		{"", DirNone, true},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{X: 0, Y: 0}, true},
		{"last cell", Point{X: 9, Y: 9}, true},
		{"right edge", Point{X: 10, Y: 5}, false},
		{"bottom edge", Point{X: 5, Y: 10}, false},
		{"negative", Point{X: -1, Y: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
	if Clamp(7, 0, 10) != 7 {
		t.Error("Clamp should keep values in range")
	}
}

func TestInputFrameMovesKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	moves := f.Moves()
	if len(moves) != 2 || moves[0] != DirUp || moves[1] != DirLeft {
		t.Fatalf("Moves() = %v, expected [up left]", moves)
	}
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true")
	}

	f.Clear()
	if len(f.Moves()) != 0 || f.Has(ActionUp) {
		t.Error("Clear() should drop all actions and moves")
	}
}
