package lab

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleEmber
	ParticleSmoke
	ParticleDroplet
)

// Particle is one short-lived visual entity. Position and velocity are
// in screen pixels per tick; Life counts remaining ticks.
type Particle struct {
	X, Y   float64
	VX, VY float64
	AX, AY float64

	Size float64

	Life    int
	MaxLife int

	Col   RGB // current colour, faded each tick
	Base  RGB // colour at spawn
	Alpha float64
	Kind  ParticleKind
}

// ParticleSystem owns a bounded pool of particles. Spawners append;
// Tick advances physics, expires dead particles, and evicts the oldest
// excess above Max so a spawn burst can never grow the pool unbounded.
type ParticleSystem struct {
	Max  int
	P    []Particle
	seed uint64
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

func (ps *ParticleSystem) Count() int { return len(ps.P) }

func (ps *ParticleSystem) add(p Particle) {
	p.Base = p.Col
	p.Alpha = 1.0
	if p.MaxLife <= 0 {
		p.MaxLife = ParticleLifetime
	}
	if p.Life <= 0 {
		p.Life = p.MaxLife
	}
	ps.P = append(ps.P, p)
}
