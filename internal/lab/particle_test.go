package lab

import "testing"

func TestParticlePoolBounded(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 42)
	for i := 0; i < 30; i++ {
		ps.SpawnExplosion(400, 300, Palette.Ignition, 1.0)
	}
	ps.Tick()
	if ps.Count() > ps.Max {
		t.Errorf("pool holds %d particles after Tick, cap is %d", ps.Count(), ps.Max)
	}
	if ps.Count() == 0 {
		t.Error("pool should not be empty right after a burst")
	}
}

func TestParticleExpiry(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 7)
	ps.SpawnCleaning(100, 100)
	if ps.Count() == 0 {
		t.Fatal("cleaning spawned no droplets")
	}
	for i := 0; i < DropletLifetime; i++ {
		ps.Tick()
	}
	if ps.Count() != 0 {
		t.Errorf("%d droplets alive past their lifetime", ps.Count())
	}
}

func TestParticleAging(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 1)
	ps.add(Particle{X: 50, Y: 50, Size: 3, Col: Palette.FlameSmoke, Kind: ParticleSmoke})
	ps.add(Particle{X: 60, Y: 60, Size: 2, Col: RGB{R: 255, G: 200, B: 0}, Kind: ParticleSpark})

	ps.Tick()

	smoke := ps.P[0]
	spark := ps.P[1]
	if smoke.Size <= 3 {
		t.Errorf("smoke size = %v, should grow", smoke.Size)
	}
	if spark.Size >= 2 {
		t.Errorf("spark size = %v, should shrink", spark.Size)
	}
	if spark.Alpha >= 1 {
		t.Errorf("spark alpha = %v, should fade", spark.Alpha)
	}
	if smoke.Life != ParticleLifetime-1 {
		t.Errorf("life = %d, want %d", smoke.Life, ParticleLifetime-1)
	}
}

func TestParticlePhysics(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 1)
	ps.add(Particle{X: 10, Y: 10, VX: 2, VY: -1, AY: 0.5, Size: 2, Kind: ParticleEmber})

	ps.Tick()

	p := ps.P[0]
	if p.X != 12 {
		t.Errorf("X = %v, want 12", p.X)
	}
	// Acceleration applies before the position step.
	if p.VY != -0.5 || p.Y != 9.5 {
		t.Errorf("VY = %v, Y = %v, want -0.5 and 9.5", p.VY, p.Y)
	}
}

func TestSpawnDeterminism(t *testing.T) {
	a := NewParticleSystem(MaxParticles, 99)
	b := NewParticleSystem(MaxParticles, 99)

	a.SpawnFlame(200, 200, ChemNa)
	b.SpawnFlame(200, 200, ChemNa)

	if a.Count() != b.Count() {
		t.Fatalf("counts differ: %d vs %d", a.Count(), b.Count())
	}
	for i := range a.P {
		if a.P[i] != b.P[i] {
			t.Errorf("particle %d differs: %+v vs %+v", i, a.P[i], b.P[i])
		}
	}
}

func TestSpawnFlameUnknownChemical(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 5)
	ps.SpawnFlame(100, 100, ChemNone)
	if ps.Count() != 0 {
		t.Error("unknown chemical should spawn nothing")
	}
}

func TestSpawnCounts(t *testing.T) {
	tests := []struct {
		name     string
		spawn    func(ps *ParticleSystem)
		min, max int
	}{
		{"interaction", func(ps *ParticleSystem) { ps.SpawnInteraction(50, 50, Palette.Water) }, 3, 6},
		{"mixing", func(ps *ParticleSystem) { ps.SpawnMixing(40, 40, 60, 60, Palette.Ignition) }, 8, 12},
		{"cleaning", func(ps *ParticleSystem) { ps.SpawnCleaning(50, 50) }, 2, 4},
		{"explosion", func(ps *ParticleSystem) { ps.SpawnExplosion(50, 50, Palette.Ignition, 1.0) }, 15, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewParticleSystem(MaxParticles, 123)
			tt.spawn(ps)
			if n := ps.Count(); n < tt.min || n > tt.max {
				t.Errorf("spawned %d particles, want %d..%d", n, tt.min, tt.max)
			}
		})
	}
}
