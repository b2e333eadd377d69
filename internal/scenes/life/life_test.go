package life

import "testing"

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	cells := life.Cells()
	for i := range cells {
		cells[i] = 0
	}

	w := life.Size().W
	set := func(x, y int) { life.Cells()[y*w+x] = 1 }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()
	cells = life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestResetDeterministicPerSeed(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(99)
	b.Reset(99)

	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("cell %d differs across equal seeds: %d vs %d", i, ac[i], bc[i])
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "h": "7"})
	if c.Width != 12 || c.Height != 7 {
		t.Fatalf("FromMap = %+v, want 12x7", c)
	}

	c = FromMap(map[string]string{"w": "bogus", "h": "-3"})
	d := DefaultConfig()
	if c != d {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
}
