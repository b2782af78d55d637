package fusion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// madgwickFilter is Sebastian Madgwick's IMU-only gradient-descent
// orientation filter: a complementary fusion of gyroscope integration and
// an accelerometer-derived correction, tuned by a single gain (beta).
//
// Two instances of this filter, tuned to different beta values and blended
// afterwards, are what give State its dual anti-drift/steadiness behavior;
// this type itself knows nothing about that blend.
type madgwickFilter struct {
	beta float64
	quat mgl64.Quat
}

func newMadgwickFilter(beta float64) *madgwickFilter {
	return &madgwickFilter{beta: beta, quat: mgl64.QuatIdent()}
}

// updateIMU advances the filter's orientation estimate by dt seconds, given
// a gyroscope reading in radians/second and an accelerometer reading in
// g-normalized units. A zero-magnitude accelerometer reading (no usable
// gravity reference) skips the correction step and falls back to pure
// gyroscope integration.
func (f *madgwickFilter) updateIMU(gyro, accel mgl64.Vec3, dt float64) {
	q := f.quat

	qDot1 := 0.5 * (-q.V[0]*gyro[0] - q.V[1]*gyro[1] - q.V[2]*gyro[2])
	qDot2 := 0.5 * (q.W*gyro[0] + q.V[1]*gyro[2] - q.V[2]*gyro[1])
	qDot3 := 0.5 * (q.W*gyro[1] - q.V[0]*gyro[2] + q.V[2]*gyro[0])
	qDot4 := 0.5 * (q.W*gyro[2] + q.V[0]*gyro[1] - q.V[1]*gyro[0])

	if norm := accel.Len(); norm > 0 {
		a := accel.Normalize()

		q1, q2, q3, q4 := q.W, q.V[0], q.V[1], q.V[2]

		// Objective function: the error between the direction gravity
		// would read in the body frame under the current orientation
		// estimate and the measured accelerometer direction.
		f0 := 2*(q2*q4-q1*q3) - a[0]
		f1 := 2*(q1*q2+q3*q4) - a[1]
		f2 := 2*(0.5-q2*q2-q3*q3) - a[2]

		// Jacobian of f with respect to (q1,q2,q3,q4), row per f component.
		j11, j12, j13, j14 := -2*q3, 2*q4, -2*q1, 2*q2
		j21, j22, j23, j24 := 2*q2, 2*q1, 2*q4, 2*q3
		j32, j33 := -4*q2, -4*q3

		// Gradient step = J^T * f.
		s0 := j11*f0 + j21*f1
		s1 := j12*f0 + j22*f1 + j32*f2
		s2 := j13*f0 + j23*f1 + j33*f2
		s3 := j14*f0 + j24*f1

		gradLen := math.Sqrt(s0*s0 + s1*s1 + s2*s2 + s3*s3)
		if gradLen > 0 {
			s0, s1, s2, s3 = s0/gradLen, s1/gradLen, s2/gradLen, s3/gradLen
			qDot1 -= f.beta * s0
			qDot2 -= f.beta * s1
			qDot3 -= f.beta * s2
			qDot4 -= f.beta * s3
		}
	}

	q.W += qDot1 * dt
	q.V[0] += qDot2 * dt
	q.V[1] += qDot3 * dt
	q.V[2] += qDot4 * dt

	f.quat = q.Normalize()
}

// orientation returns the filter's current orientation estimate.
func (f *madgwickFilter) orientation() mgl64.Quat {
	return f.quat.Normalize()
}
