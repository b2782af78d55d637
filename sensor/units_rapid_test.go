package sensor

import (
	"testing"

	"pgregory.net/rapid"
)

// gyroRadPerSec is odd-symmetric for every representable raw count, not
// just the handful of fixed points the table test in units_test.go covers.
func TestGyroConverterIsOddSymmetricForAnyRawCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.Int16Range(-32767, 32767).Draw(t, "raw")
		got, want := gyroRadPerSec(raw), -gyroRadPerSec(-raw)
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("gyroRadPerSec(%d) = %v, want %v (odd symmetry)", raw, got, want)
		}
	})
}

// accelG never produces a magnitude outside [0, 1] for any raw 16-bit
// count: the shift-then-scale conversion is bounded by construction.
func TestAccelConverterStaysWithinUnitMagnitude(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.Int16().Draw(t, "raw")
		got := accelG(raw)
		if got < -1.0001 || got > 1.0001 {
			t.Fatalf("accelG(%d) = %v, outside expected [-1,1] range", raw, got)
		}
	})
}
