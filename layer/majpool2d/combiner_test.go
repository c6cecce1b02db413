package majpool2d

import "testing"

func TestFeatureMajority(t *testing.T) {
	c := MustNew(2, 1, 3, 1, 1).Lay()
	// cell 0: 1,1,0 -> majority; cell 1: 1,0,0 -> no majority
	for i, v := range []bool{true, true, false, true, false, false} {
		c.Put(i, v)
	}
	if got, want := c.Feature(0), uint32(0b1011); got != want {
		t.Errorf("Feature(0) = %04b, want %04b", got, want)
	}
	if got, want := c.Feature(1), uint32(0b0001); got != want {
		t.Errorf("Feature(1) = %04b, want %04b", got, want)
	}
	if got := c.Feature(2); got != 0 {
		t.Errorf("Feature(2) past end = %d", got)
	}
}

func TestEveryInputReachesAFeature(t *testing.T) {
	const fanout2 = 5
	const fanout4 = 4
	a := MustNew(fanout2, 1, fanout4, 1, 1)
	for q := 0; q < a.Inputs(); q++ {
		c := a.Lay()
		c.Put(q, true)
		var seen bool
		for j := 0; j < fanout2; j++ {
			if c.Feature(j) != 0 {
				seen = true
			}
		}
		if !seen {
			t.Fatalf("input %d not visible in any feature", q)
		}
	}
}

func TestNewRejects(t *testing.T) {
	if _, err := New(0, 1, 1, 1, 1); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := New(1, 1, 8, 4, 1); err == nil {
		t.Error("oversized block accepted")
	}
}
