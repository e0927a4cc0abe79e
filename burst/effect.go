// Package burst simulates and renders particle effects.
//
// Unlike spawning one entity per particle, an Effect owns a fixed-capacity
// particle buffer that is simulated in place and rendered in a single draw
// call. Particles live in the local space of the effect entity.
package burst

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
	"github.com/oliverbestmann/byke/bykebiten/color"
	"github.com/oliverbestmann/byke/gm"
	"github.com/oliverbestmann/byke-extras/curve"
)

var _ = byke.ValidateComponent[Effect]()
var _ = byke.ValidateComponent[DespawnOnFinished]()

// Particle is the simulation state of a single particle. Positions are
// stored for the current and the previous step, the implicit difference
// between the two is the particle's velocity.
type Particle struct {
	Position     gm.Vec
	Prev         gm.Vec
	Acceleration gm.Vec

	// Age and Lifetime in seconds.
	Age      float64
	Lifetime float64
}

// Spawner emits new particles at a configurable rate. Particles spawn at
// the effect origin, optionally offset within a disc of the given Radius.
type Spawner struct {
	// Rate is the number of particles to spawn per second.
	Rate       float64
	RateJitter float64

	Velocity       gm.Vec
	VelocityJitter gm.Vec

	// Positive radius spawns particles within a disc around the origin.
	Radius float64

	Lifetime       time.Duration
	LifetimeJitter time.Duration

	// A disabled spawner emits no particles. Already spawned particles
	// keep simulating, and the effect finishes once the last one dies.
	Disabled bool
}

// Updater advances particles using Verlet integration.
type Updater struct {
	// Gravity is the constant acceleration applied to every particle.
	Gravity gm.Vec

	// Damping scales down the implicit velocity per second. Zero keeps
	// the velocity untouched.
	Damping float64
}

// Effect is a self-contained particle effect. Spawn it with a Transform;
// the particle canvas is shown through the Sprite that the Effect requires.
type Effect struct {
	byke.Component[Effect]

	Spawner Spawner
	Updater Updater

	// Texture of a single particle. If nil, a white pixel is used.
	Texture *ebiten.Image

	// BaseSize is the particle quad size in units, before the ScaleCurve
	// is applied.
	BaseSize gm.Vec

	// ColorCurve is sampled over the particle lifetime.
	// Defaults to constant white.
	ColorCurve curve.Curve[color.Color]

	// ScaleCurve is sampled over the particle lifetime.
	// Defaults to constant 1.
	ScaleCurve curve.Curve[float64]

	// Bounds is the size of the canvas the effect renders into, centered
	// on the effect entity. Particles outside are clipped.
	Bounds gm.Vec

	spawnAcc float64

	buffer []Particle
	alive  int

	canvas       *ebiten.Image
	finishedSent bool
}

func (Effect) RequireComponents() []byke.ErasedComponent {
	return []byke.ErasedComponent{
		bykebiten.Sprite{Image: emptyImage()},
		bykebiten.AnchorCenter,
	}
}

// NewEffect builds an effect with room for capacity particles.
// Capacity is limited to 16383 particles, the number of quads that fit a
// single draw call with 16 bit indices.
func NewEffect(capacity int, spawner Spawner, updater Updater) Effect {
	capacity = min(capacity, 16383)

	return Effect{
		Spawner:  spawner,
		Updater:  updater,
		BaseSize: gm.VecSplat(4),
		Bounds:   gm.Vec{X: 512, Y: 512},
		buffer:   make([]Particle, capacity),
	}
}

func (e Effect) WithTexture(texture *ebiten.Image) Effect {
	e.Texture = texture
	return e
}

func (e Effect) WithBaseSize(size gm.Vec) Effect {
	e.BaseSize = size
	return e
}

func (e Effect) WithColorCurve(c curve.Curve[color.Color]) Effect {
	e.ColorCurve = c
	return e
}

func (e Effect) WithScaleCurve(c curve.Curve[float64]) Effect {
	e.ScaleCurve = c
	return e
}

func (e Effect) WithBounds(bounds gm.Vec) Effect {
	e.Bounds = bounds
	return e
}

// Capacity is the maximum number of particles alive at the same time.
func (e *Effect) Capacity() int {
	return len(e.buffer)
}

// Alive is the number of particles currently simulated.
func (e *Effect) Alive() int {
	return e.alive
}

// Particles returns the live particles. The slice is only valid until the
// next simulation step.
func (e *Effect) Particles() []Particle {
	return e.buffer[:e.alive]
}

// EmitBurst queues n particles to spawn during the next spawn step,
// independent of the spawner rate. Bursts also work on disabled spawners.
func (e *Effect) EmitBurst(n int) {
	e.spawnAcc += float64(n)
	e.finishedSent = false
}

// EffectFinished is written once when the last particle of an effect with a
// disabled spawner dies.
type EffectFinished struct {
	Entity byke.EntityId
}

// DespawnOnFinished despawns the effect entity when the effect finishes.
type DespawnOnFinished struct {
	byke.ComparableComponent[DespawnOnFinished]
}
