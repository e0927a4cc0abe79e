// Package tween animates fields of components over time.
//
// An Animator is attached next to the component it animates. Each frame the
// plugin advances the animator, samples its easing curve and applies the
// resulting ratio to the target component through a Lens.
package tween

import (
	"time"

	"github.com/oliverbestmann/byke"
)

// State is the playback state of an Animator.
type State uint8

const (
	Playing State = iota
	Paused
)

// Toggled returns the opposite playback state.
func (s State) Toggled() State {
	if s == Playing {
		return Paused
	}

	return Playing
}

type RepeatMode uint8

const (
	RepeatOnce RepeatMode = iota
	RepeatLoop
	RepeatPingPong
)

// Playback describes how the progress ratio of an Animator evolves over time.
type Playback struct {
	Mode     RepeatMode
	Duration time.Duration

	// Pause applies to RepeatPingPong only and holds the animation at each
	// turn-around point.
	Pause time.Duration
}

// Once runs the animation from start to end a single time.
func Once(duration time.Duration) Playback {
	return Playback{Mode: RepeatOnce, Duration: duration}
}

// Loop restarts the animation from the start every time it reaches the end.
func Loop(duration time.Duration) Playback {
	return Playback{Mode: RepeatLoop, Duration: duration}
}

// PingPong runs the animation back and forth, holding for pause at
// each end. One full cycle is start to end to start.
func PingPong(duration, pause time.Duration) Playback {
	return Playback{Mode: RepeatPingPong, Duration: duration, Pause: pause}
}

// TweenCompleted is written once per completed animation cycle of an
// Animator. For RepeatOnce animators this happens a single time.
type TweenCompleted struct {
	Entity byke.EntityId
}

// Animator animates the component C on the same entity using its Lens.
type Animator[C byke.IsComponent[C]] struct {
	byke.Component[Animator[C]]

	State State

	// Ease shapes the progress ratio. A nil Ease is linear.
	Ease EaseFunction

	// Lens applies the eased ratio to the target component.
	Lens Lens[C]

	playback  Playback
	timer     byke.Timer
	pause     byke.Timer
	inPause   bool
	backwards bool
}

// NewAnimator builds a playing Animator.
func NewAnimator[C byke.IsComponent[C]](ease EaseFunction, playback Playback, lens Lens[C]) Animator[C] {
	mode := byke.TimerModeRepeating
	if playback.Mode == RepeatOnce {
		mode = byke.TimerModeOnce
	}

	return Animator[C]{
		Ease:     ease,
		Lens:     lens,
		playback: playback,
		timer:    byke.NewTimer(playback.Duration, mode),
	}
}

// Restart rewinds the animator to its starting point.
func (a *Animator[C]) Restart() {
	a.timer.Reset()
	a.inPause = false
	a.backwards = false
}

// Tick advances the animator and returns the current linear progress ratio
// together with the number of cycles completed during this tick.
// A paused animator holds its ratio.
func (a *Animator[C]) Tick(delta time.Duration) (float64, int) {
	if a.State == Paused || a.playback.Duration <= 0 {
		return a.ratio(), 0
	}

	if a.inPause {
		if a.pause.Tick(delta).JustFinished() {
			a.inPause = false
		}

		return a.ratio(), 0
	}

	a.timer.Tick(delta)

	var completed int

	switch a.playback.Mode {
	case RepeatOnce, RepeatLoop:
		completed = a.timer.TimesFinishedThisTick()

	case RepeatPingPong:
		for range a.timer.TimesFinishedThisTick() {
			if a.backwards {
				// back at the start, one full cycle done
				completed += 1
			}

			a.backwards = !a.backwards
		}

		if a.timer.TimesFinishedThisTick() > 0 && a.playback.Pause > 0 {
			// the pause swallows any leftover delta, the next leg starts
			// from the turn-around point
			a.timer.Reset()
			a.pause = byke.NewTimer(a.playback.Pause, byke.TimerModeOnce)
			a.inPause = true
		}
	}

	return a.ratio(), completed
}

func (a *Animator[C]) ratio() float64 {
	if a.playback.Duration <= 0 {
		return 1
	}

	f := min(a.timer.Fraction(), 1)

	if a.playback.Mode == RepeatPingPong && a.backwards {
		return 1 - f
	}

	return f
}
