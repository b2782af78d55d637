package sensor

import "math"

// fullScaleDegPerSec is the gyroscope's assumed full-scale range.
const fullScaleDegPerSec = 2000.0

const degToRad = math.Pi / 180.0

// gyroRadPerSec converts a raw 16-bit gyroscope count to radians/second,
// assuming a +/-2000 deg/s full scale range.
func gyroRadPerSec(raw int16) float64 {
	return (float64(raw) / 32768.0) * fullScaleDegPerSec * degToRad
}

// accelG converts a raw 16-bit accelerometer count to g-normalized units.
// The underlying sensor reports a 12-bit value left-packed into the 16-bit
// field, so the raw count is shifted left by 4 before scaling.
func accelG(raw int16) float64 {
	shifted := raw << 4
	return -(float64(shifted) / 32768.0)
}
