// SPDX-License-Identifier: MIT
package probability

import (
	"math"
	"math/rand"
)

// Normal summarises a sample under a normal model.
type Normal struct {
	Mean              float64 `yaml:"mean"`
	StandardDeviation float64 `yaml:"standardDeviation"`
}

// RandomInterval draws uniformly from [min, max).
func RandomInterval(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// RandomNormal draws from N(mean, stdDev²) with the Marsaglia polar method.
// Each call consumes at least two uniforms; the second normal deviate of the
// pair is discarded so the method stays stateless.
func RandomNormal(rng *rand.Rand, mean, stdDev float64) float64 {
	var u, v, s float64
	for {
		u = rng.Float64()*2 - 1
		v = rng.Float64()*2 - 1
		s = u*u + v*v
		if s < 1 && s != 0 {
			break
		}
	}

	return mean + stdDev*u*math.Sqrt(-2*math.Log(s)/s)
}

// NormalDistribution returns the mean and the population standard deviation
// of samples. ok is false for an empty sample.
func NormalDistribution(samples []float64) (dist Normal, ok bool) {
	n := float64(len(samples))
	if len(samples) == 0 {
		return Normal{}, false
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / n

	var sq float64
	for _, v := range samples {
		sq += (v - mean) * (v - mean)
	}

	return Normal{Mean: mean, StandardDeviation: math.Sqrt(sq / n)}, true
}
