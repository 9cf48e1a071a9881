package finance

import "testing"

func TestNPV_EmptyCashFlows(t *testing.T) {
	if got := NPV(1234, nil, 7); got != -1234 {
		t.Errorf("expected -1234, got %.4f", got)
	}
}

func TestNPV_ZeroRate(t *testing.T) {
	got := NPV(1000, []float64{100, 200, 300}, 0)
	assertClose(t, -400, got, 1e-9, "undiscounted npv")
}

func TestNPV_KnownValue(t *testing.T) {
	// 1100 one year out at 10% is worth exactly 1000 today.
	got := NPV(1000, []float64{1100}, 10)
	assertClose(t, 0, got, 1e-9, "npv")
}

func TestNPV_MonotonicInRate(t *testing.T) {
	flows := [][]float64{
		{100, 100, 100, 1100},
		{0, 0, 0, 0, 5000},
		{20000},
		{1895.94, 0, 501172.98},
	}

	for _, cf := range flows {
		previous := NPV(1000, cf, -50)
		for rate := -49.0; rate <= 100; rate++ {
			current := NPV(1000, cf, rate)
			if current > previous {
				t.Fatalf("npv increased at %.0f%%: %.4f -> %.4f", rate, previous, current)
			}
			previous = current
		}
	}
}
