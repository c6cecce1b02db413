package full

import "testing"

func TestFeature(t *testing.T) {
	c := MustNew(6, 2, 2).Lay()
	for i, v := range []bool{true, false, false, true, true, true} {
		c.Put(i, v)
	}
	for n, want := range []uint32{2, 1, 3, 0} {
		if got := c.Feature(n); got != want {
			t.Errorf("Feature(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	if _, err := New(0, 1, 1); err == nil {
		t.Error("zero size accepted")
	}
	if _, err := New(4, 1, 0); err == nil {
		t.Error("zero maxbits accepted")
	}
	if l := MustNew(5, 1, 1); l.Inputs() != 5 {
		t.Errorf("Inputs() = %d", l.Inputs())
	}
}
