package floatutils

import "testing"

func TestClip(t *testing.T) {
	cases := [][4]float64{
		// value, min, max, expected
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{3, 0, 1, 1},
		{1, 1, 1, 1},
	}

	for _, c := range cases {
		if got := Clip(c[0], c[1], c[2]); got != c[3] {
			t.Errorf("clip(%v, %v, %v): expected %v, got %v", c[0], c[1],
				c[2], c[3], got)
		}
	}
}

func TestWhere(t *testing.T) {
	values := []float64{0, 1, 0, 1, 1}
	indices := Where(values, func(v float64) bool { return v == 1 })

	want := []int{1, 3, 4}
	if len(indices) != len(want) {
		t.Fatalf("where: expected %v, got %v", want, indices)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("where: expected %v, got %v", want, indices)
		}
	}

	if none := Where(values, func(v float64) bool { return v > 1 }); none != nil {
		t.Errorf("where: expected no indices, got %v", none)
	}
}
