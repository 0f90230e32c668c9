package coord_test

import (
	"errors"
	"testing"

	"github.com/corenet-sim/torusnet/coord"
)

func TestRoundTrip(t *testing.T) {
	dims := []int{3, 3, 2}
	total := coord.Product(dims)
	if total != 18 {
		t.Fatalf("Product = %d, want 18", total)
	}
	for n := 0; n < total; n++ {
		cs, err := coord.CoordsOf(n, dims)
		if err != nil {
			t.Fatalf("CoordsOf(%d): %v", n, err)
		}
		got, err := coord.NodeOf(cs, dims)
		if err != nil {
			t.Fatalf("NodeOf(%v): %v", cs, err)
		}
		if got != n {
			t.Errorf("round trip node=%d coords=%v got=%d", n, cs, got)
		}
	}
}

func TestCoordsOfLeastSignificantFirst(t *testing.T) {
	dims := []int{3, 3, 2}
	// node 4 = coords (1,1,0): 4 = 1 + 1*3 + 0*9
	cs, err := coord.CoordsOf(4, dims)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 1, 0}
	for i := range want {
		if cs[i] != want[i] {
			t.Fatalf("CoordsOf(4) = %v, want %v", cs, want)
		}
	}
}

func TestNodeOutOfRange(t *testing.T) {
	_, err := coord.CoordsOf(18, []int{3, 3, 2})
	if !errors.Is(err, coord.ErrNodeOutOfRange) {
		t.Fatalf("expected ErrNodeOutOfRange, got %v", err)
	}
	_, err = coord.CoordsOf(-1, []int{3, 3, 2})
	if !errors.Is(err, coord.ErrNodeOutOfRange) {
		t.Fatalf("expected ErrNodeOutOfRange, got %v", err)
	}
}

func TestCoordOutOfRange(t *testing.T) {
	_, err := coord.NodeOf([]int{3, 0, 0}, []int{3, 3, 2})
	if !errors.Is(err, coord.ErrCoordOutOfRange) {
		t.Fatalf("expected ErrCoordOutOfRange, got %v", err)
	}
}

func TestDimMismatch(t *testing.T) {
	_, err := coord.NodeOf([]int{1, 1}, []int{3, 3, 2})
	if !errors.Is(err, coord.ErrDimMismatch) {
		t.Fatalf("expected ErrDimMismatch, got %v", err)
	}
}

func TestEmptyDims(t *testing.T) {
	if _, err := coord.CoordsOf(0, nil); !errors.Is(err, coord.ErrEmptyDims) {
		t.Fatalf("expected ErrEmptyDims, got %v", err)
	}
}
