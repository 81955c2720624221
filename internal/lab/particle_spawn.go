package lab

import "math"

// Per-kind physics constants. Sparks are fast and short-lived, embers
// drift and glow, smoke rises on negative gravity and expands.
const (
	sparkGravity   = 0.2
	emberGravity   = 0.1
	smokeGravity   = -0.05
	dropletGravity = 0.2
)

// SpawnFlame feeds the steady particle stream of one burning flame:
// one or two sparks every call, an ember roughly one call in five,
// smoke slightly less often. Called once per rendered frame per flame.
func (ps *ParticleSystem) SpawnFlame(x, y float64, chem Chemical) {
	spec, ok := Chemicals[chem]
	if !ok {
		return
	}
	col := spec.ParticleColor

	r := NewRand(ps.nextSeed(x, y))

	for range r.Range(1, 2) {
		ps.add(Particle{
			X: x + r.RangeF(-8, 8), Y: y + r.RangeF(-15, 8),
			VX: r.RangeF(-2, 2), VY: r.RangeF(-5, -2),
			AY:   sparkGravity,
			Size: r.RangeF(0.5, 2),
			Col:  col, Kind: ParticleSpark,
		})
	}

	if r.Float64() < 0.2 {
		ps.add(Particle{
			X: x + r.RangeF(-12, 12), Y: y + r.RangeF(-8, 15),
			VX: r.RangeF(-2, 2), VY: r.RangeF(-3, -1),
			AY:   emberGravity,
			Size: r.RangeF(2, 4),
			Col:  col, Kind: ParticleEmber,
		})
	}

	if r.Float64() < 0.15 {
		ps.add(Particle{
			X: x + r.RangeF(-15, 15), Y: y + r.RangeF(-20, -8),
			VX: r.RangeF(-1, 1), VY: r.RangeF(-2, -0.5),
			AY:   smokeGravity,
			Size: r.RangeF(3, 6),
			Col:  Palette.FlameSmoke, Kind: ParticleSmoke,
		})
	}
}

// SpawnInteraction gives touch feedback at a beaker: a small burst of
// sparks in the chemical's colour.
func (ps *ParticleSystem) SpawnInteraction(x, y float64, col RGB) {
	r := NewRand(ps.nextSeed(x, y))
	for range r.Range(3, 6) {
		ps.add(Particle{
			X: x + r.RangeF(-15, 15), Y: y + r.RangeF(-10, 10),
			VX: r.RangeF(-2, 2), VY: r.RangeF(-5, -2),
			AY:   sparkGravity,
			Size: r.RangeF(0.5, 2),
			Col:  col, Kind: ParticleSpark,
		})
	}
}

// SpawnMixing bursts embers radially from the midpoint of two mixing
// flames, coloured by the mixture result.
func (ps *ParticleSystem) SpawnMixing(x1, y1, x2, y2 float64, col RGB) {
	mx := (x1 + x2) / 2
	my := (y1 + y2) / 2

	r := NewRand(ps.nextSeed(mx, my))
	for range r.Range(8, 12) {
		ang := r.RangeF(0, 2*math.Pi)
		rad := r.RangeF(5, 20)
		ps.add(Particle{
			X: mx + rad*math.Cos(ang), Y: my + rad*math.Sin(ang),
			VX: r.RangeF(-2, 2), VY: r.RangeF(-3, -1),
			AY:   emberGravity,
			Size: r.RangeF(2, 4),
			Col:  col, Kind: ParticleEmber,
		})
	}
}

// SpawnCleaning sprays a few short-lived water droplets.
func (ps *ParticleSystem) SpawnCleaning(x, y float64) {
	r := NewRand(ps.nextSeed(x, y))
	for range r.Range(2, 4) {
		ps.add(Particle{
			X: x + r.RangeF(-10, 10), Y: y + r.RangeF(-5, 5),
			VX: r.RangeF(-2, 2), VY: r.RangeF(-2, 2),
			AY:   dropletGravity,
			Size: r.RangeF(0.5, 2),
			Life: DropletLifetime, MaxLife: DropletLifetime,
			Col: Palette.Water, Kind: ParticleDroplet,
		})
	}
}

// SpawnExplosion bursts embers outward for dramatic reactions
// (ignition flash). intensity scales count, speed, and size.
func (ps *ParticleSystem) SpawnExplosion(x, y float64, col RGB, intensity float64) {
	if intensity <= 0 {
		return
	}
	r := NewRand(ps.nextSeed(x, y))
	for range int(15 * intensity) {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(3, 8) * intensity
		ps.add(Particle{
			X: x + r.RangeF(-5, 5), Y: y + r.RangeF(-5, 5),
			VX: spd * math.Cos(ang), VY: spd * math.Sin(ang),
			AY:   emberGravity,
			Size: r.RangeF(2, 5) * intensity,
			Life: ParticleLifetime * 3 / 2, MaxLife: ParticleLifetime * 3 / 2,
			Col: col, Kind: ParticleEmber,
		})
	}
}

// nextSeed derives a fresh spawn seed from the pool seed, the spawn
// position, and the particles spawned so far, so repeated bursts at
// the same spot still vary.
func (ps *ParticleSystem) nextSeed(x, y float64) uint64 {
	ps.seed = splitmix64(ps.seed)
	return hash2D(ps.seed, int(x), int(y))
}
