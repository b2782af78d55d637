// Package fusion turns a stream of gyroscope/accelerometer samples into a
// unit quaternion orientation, by running two Madgwick filters tuned for
// different tradeoffs and blending their outputs.
package fusion

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// antiDriftBeta favors the accelerometer correction, suppressing
	// long-term gyroscope drift at the cost of more jitter under motion.
	antiDriftBeta = 0.125

	// steadinessBeta favors gyroscope integration, giving a smoother
	// estimate that drifts more over time.
	steadinessBeta = 0.035

	// blendFactor is the fixed SLERP interpolation point between the two
	// filters' estimates.
	blendFactor = 0.5

	// defaultDt is assumed for the first Update call, before a real
	// wall-clock delta is available.
	defaultDt = 1.0 / 120.0
)

// State holds the dual-filter orientation estimate for one headset.
type State struct {
	antiDrift  *madgwickFilter
	steadiness *madgwickFilter
	lastUpdate time.Time
}

// NewState returns a State with both filters initialized to the identity
// orientation.
func NewState() *State {
	return &State{
		antiDrift:  newMadgwickFilter(antiDriftBeta),
		steadiness: newMadgwickFilter(steadinessBeta),
	}
}

// Update feeds one inertial sample into both filters. now is the wall-clock
// time the sample was taken; the elapsed time since the previous Update
// determines the integration step. The very first call after NewState uses
// defaultDt, since there is no previous sample to measure against.
func (s *State) Update(gyro, accel mgl64.Vec3, now time.Time) {
	dt := defaultDt
	if !s.lastUpdate.IsZero() {
		if measured := now.Sub(s.lastUpdate).Seconds(); measured > 0 {
			dt = measured
		}
	}
	s.lastUpdate = now

	s.antiDrift.updateIMU(gyro, accel, dt)
	s.steadiness.updateIMU(gyro, accel, dt)
}

// Orientation returns the current blended orientation as a unit quaternion.
func (s *State) Orientation() mgl64.Quat {
	blended := mgl64.QuatSlerp(s.antiDrift.orientation(), s.steadiness.orientation(), blendFactor)
	return blended.Normalize()
}
