package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	a := PlaneFromRows([]float32{1, 2}, []float32{3, 4})
	b := PlaneFromRows([]float32{1, 2.5}, []float32{3, 3})

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}

	if _, err := MaxAbsDiff(a, PlaneFromRows([]float32{1})); err == nil {
		t.Fatal("expected shape error")
	}
}

func TestAbsSum(t *testing.T) {
	p := PlaneFromRows([]float32{1, -1}, []float32{0, 2})
	if s := AbsSum(p, 0); s != 4 {
		t.Fatalf("AbsSum = %v, want 4", s)
	}
	if s := AbsSum(p, 1); s != 4 {
		t.Fatalf("AbsSum(baseline 1) = %v, want 4", s)
	}
}
