package burst

import (
	"math"
	"time"

	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/gm"
)

func spawnSystem(
	vt byke.VirtualTime,
	effects byke.Query[struct {
		Effect *Effect
	}],
) {
	for item := range effects.Items() {
		item.Effect.spawn(vt.DeltaSecs)
	}
}

// spawn accumulates the spawn rate and initializes new particles in the
// free tail of the buffer.
func (e *Effect) spawn(dt float64) {
	s := &e.Spawner

	if !s.Disabled {
		// a jitter larger than the rate must not push the accumulator
		// negative and stall future spawns
		e.spawnAcc += max(0, jitter(s.Rate, s.RateJitter)) * dt
	}

	count := int(e.spawnAcc)
	if count <= 0 {
		return
	}

	// keep the fractional part only. Particles that do not fit into the
	// remaining capacity are dropped.
	e.spawnAcc -= math.Trunc(e.spawnAcc)
	count = min(count, len(e.buffer)-e.alive)

	for range count {
		lifetime := jitterDuration(s.Lifetime, s.LifetimeJitter).Seconds()
		if lifetime <= 0 {
			continue
		}

		pos := gm.RandomVec[float64]().Mul(s.Radius)
		velocity := jitterVec(s.Velocity, s.VelocityJitter)

		p := &e.buffer[e.alive]
		e.alive += 1

		p.Position = pos
		// encode the start velocity into the previous position
		p.Prev = pos.Sub(velocity.Mul(dt))
		p.Acceleration = e.Updater.Gravity
		p.Age = 0
		p.Lifetime = lifetime
	}

	if e.alive > 0 {
		e.finishedSent = false
	}
}

func updateSystem(
	vt byke.VirtualTime,
	commands *byke.Commands,
	finished *byke.EventWriter[EffectFinished],
	effects byke.Query[struct {
		byke.EntityId
		Effect  *Effect
		Despawn byke.Has[DespawnOnFinished]
	}],
) {
	for item := range effects.Items() {
		e := item.Effect
		e.step(vt.DeltaSecs)

		if e.alive == 0 && e.Spawner.Disabled && !e.finishedSent {
			e.finishedSent = true
			finished.Write(EffectFinished{Entity: item.EntityId})

			if item.Despawn.Exists() {
				commands.Entity(item.EntityId).Despawn()
			}
		}
	}
}

// step ages and integrates all live particles. Expired particles are
// swap-removed so the live ones always form a prefix of the buffer.
func (e *Effect) step(dt float64) {
	damping := 1.0
	if e.Updater.Damping != 0 {
		damping = max(0, 1-e.Updater.Damping*dt)
	}

	for i := 0; i < e.alive; {
		p := &e.buffer[i]

		p.Age += dt
		if p.Age >= p.Lifetime {
			e.alive -= 1
			e.buffer[i] = e.buffer[e.alive]
			continue
		}

		// Verlet step
		prev := p.Position
		p.Position = p.Position.Mul(2).Sub(p.Prev).Add(p.Acceleration.Mul(dt * dt))

		if damping != 1 {
			p.Position = prev.Add(p.Position.Sub(prev).Mul(damping))
		}

		p.Prev = prev

		i += 1
	}
}

func jitter(base, amount float64) float64 {
	if amount == 0 {
		return base
	}

	return base + gm.RandomIn(-amount, amount)
}

func jitterVec(base, amount gm.Vec) gm.Vec {
	return base.Add(gm.RandomVec[float64]().MulEach(amount))
}

func jitterDuration(base, amount time.Duration) time.Duration {
	if amount == 0 {
		return base
	}

	return base + time.Duration(gm.RandomIn(-float64(amount), float64(amount)))
}
