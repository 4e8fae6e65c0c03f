package rrt

import (
	"math"
	"math/rand"
)

// Sampler draws the next candidate map cell for the grow loop to steer
// toward. Each variant wires in the sampler appropriate to its stage:
// uniform for plain RRT, ellipse-restricted once c_best < inf for the
// Informed family, and the prior-set/t-distributed variants layered on top
// for Quick-Informed.
type Sampler interface {
	Sample(rng *rand.Rand) (x, y int)
}

// UniformSampler draws a uniform random cell from the grid extent.
type UniformSampler struct {
	NX, NY int
}

// Sample implements Sampler.
func (s UniformSampler) Sample(rng *rand.Rand) (x, y int) {
	return rng.Intn(s.NX), rng.Intn(s.NY)
}

// EllipseSampler restricts sampling to the prolate-hyperspheroid (in 2D, an
// ellipse) informed set of spec.md §4.7: foci at start and goal, semi-major
// axis a = cBest/2 along the start-goal bearing, semi-minor axis
// b = sqrt(cBest^2 - cMin^2)/2. Falls back to a wrapped uniform sampler when
// cBest is +Inf.
type EllipseSampler struct {
	Grid           *Grid
	StartX, StartY int
	GoalX, GoalY   int
	Fallback       Sampler

	// Radial draws a radius in [0, 1) and an angle in radians for the
	// unit-disk point before the ellipse transform is applied. Plain
	// Informed RRT* uses UnitDiskUniform; Quick-Informed overrides this with
	// a heavy-tailed radial draw (see TDistributionRadial).
	Radial func(rng *rand.Rand) (r, theta float64)
}

// UnitDiskUniform rejection-samples a point uniformly within the unit disk.
func UnitDiskUniform(rng *rand.Rand) (r, theta float64) {
	for {
		u := rng.Float64()*2 - 1
		v := rng.Float64()*2 - 1
		if u*u+v*v < 1 {
			return math.Hypot(u, v), math.Atan2(v, u)
		}
	}
}

// TDistributionRadial draws a radial magnitude whose tail heaviness is
// governed by freedom (degrees of freedom of a Student-t distribution),
// squashed into [0, 1) via (2/pi)*atan(|t|) so it composes with the same
// ellipse scale-rotate-translate transform a uniform unit-disk sample
// would. freedom=1 recovers the standard Cauchy, the heaviest tail this
// family exposes; larger freedom tightens the tail back toward Gaussian-like
// concentration near the origin. This mapping is an implementer's choice
// (spec.md §9 calls the exact radial law an open question) documented in
// DESIGN.md.
func TDistributionRadial(freedom float64) func(rng *rand.Rand) (r, theta float64) {
	return func(rng *rand.Rand) (r, theta float64) {
		t := sampleStudentT(rng, freedom)
		r = (2.0 / math.Pi) * math.Atan(math.Abs(t))
		theta = rng.Float64() * 2 * math.Pi
		return r, theta
	}
}

// sampleStudentT draws from a Student-t distribution with the given degrees
// of freedom via Z / sqrt(V/freedom), Z standard normal and V ~ chi-squared
// df=freedom (itself 2*Gamma(freedom/2, 1)).
func sampleStudentT(rng *rand.Rand, freedom float64) float64 {
	if freedom <= 0 {
		freedom = 1
	}
	z := rng.NormFloat64()
	v := 2 * sampleGamma(rng, freedom/2)
	if v <= 0 {
		return z
	}
	return z / math.Sqrt(v/freedom)
}

// sampleGamma draws from Gamma(shape, 1) via Marsaglia & Tsang's method.
func sampleGamma(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		// Boost via Gamma(shape+1) and a uniform correction.
		u := rng.Float64()
		return sampleGamma(rng, shape+1) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// Sample implements Sampler. Returns the fallback sampler's draw when cBest
// is +Inf, else a point rejection-sampled until it lands in-grid.
func (s EllipseSampler) Sample(rng *rand.Rand, cBest float64) (x, y int) {
	if math.IsInf(cBest, 1) {
		return s.Fallback.Sample(rng)
	}
	cMin := DistF(float64(s.StartX), float64(s.StartY), float64(s.GoalX), float64(s.GoalY))
	a := cBest / 2
	bSq := cBest*cBest - cMin*cMin
	if bSq < 0 {
		bSq = 0
	}
	b := math.Sqrt(bSq) / 2

	midX := (float64(s.StartX) + float64(s.GoalX)) / 2
	midY := (float64(s.StartY) + float64(s.GoalY)) / 2
	theta := Angle(s.StartX, s.StartY, s.GoalX, s.GoalY)
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	radial := s.Radial
	if radial == nil {
		radial = UnitDiskUniform
	}

	for attempt := 0; attempt < 1000; attempt++ {
		r, phi := radial(rng)
		u := r * math.Cos(phi)
		v := r * math.Sin(phi)
		su := u * a
		sv := v * b
		wx := su*cosT - sv*sinT + midX
		wy := su*sinT + sv*cosT + midY
		cx := int(math.Round(wx))
		cy := int(math.Round(wy))
		if s.Grid.InBounds(cx, cy) {
			return cx, cy
		}
	}
	// Degrade to uniform sampling rather than spin forever on a
	// pathologically thin ellipse near the grid boundary.
	return s.Fallback.Sample(rng)
}

// PriorSetSampler draws from a disk of radius R centered on a randomly
// chosen node of the current best path (spec.md §4.8 "prior-set
// sampling"), concentrating effort near the incumbent solution.
type PriorSetSampler struct {
	Grid *Grid
	Path []*Node
	R    float64
}

// Sample implements Sampler.
func (s PriorSetSampler) Sample(rng *rand.Rand) (x, y int) {
	if len(s.Path) == 0 {
		return rng.Intn(s.Grid.NX), rng.Intn(s.Grid.NY)
	}
	center := s.Path[rng.Intn(len(s.Path))]
	for attempt := 0; attempt < 100; attempt++ {
		r, theta := UnitDiskUniform(rng)
		dx := r * s.R * math.Cos(theta)
		dy := r * s.R * math.Sin(theta)
		cx := int(math.Round(float64(center.X) + dx))
		cy := int(math.Round(float64(center.Y) + dy))
		if s.Grid.InBounds(cx, cy) && Dist(center.X, center.Y, cx, cy) <= s.R {
			return cx, cy
		}
	}
	return center.X, center.Y
}
