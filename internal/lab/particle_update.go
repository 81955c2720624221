package lab

// Tick advances every particle one simulation step: acceleration into
// velocity, velocity into position, lifetime countdown, colour fade,
// and per-kind size change. Dead particles are removed in place; if
// the pool still exceeds Max, the oldest excess is evicted first.
func (ps *ParticleSystem) Tick() {
	live := ps.P[:0]
	for i := range ps.P {
		p := &ps.P[i]

		p.VX += p.AX
		p.VY += p.AY
		p.X += p.VX
		p.Y += p.VY

		p.Life--
		if p.Life <= 0 {
			continue
		}

		frac := float64(p.Life) / float64(p.MaxLife)
		p.Alpha = frac

		switch p.Kind {
		case ParticleSpark, ParticleEmber, ParticleDroplet:
			// Fade toward dark, never fully black while alive.
			fade := frac*0.8 + 0.2
			p.Col = p.Base.Scale(fade)
			p.Size *= 0.98
		case ParticleSmoke:
			// Smoke keeps its fixed grey and expands as it rises.
			p.Size += 0.1
		}

		live = append(live, *p)
	}
	ps.P = live

	if len(ps.P) > ps.Max {
		excess := len(ps.P) - ps.Max
		ps.P = append(ps.P[:0], ps.P[excess:]...)
	}
}
