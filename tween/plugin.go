package tween

import (
	"github.com/oliverbestmann/byke"
	"github.com/oliverbestmann/byke/bykebiten"
)

// Systems contains the animator tick systems of all registered lens targets.
var Systems = &byke.SystemSet{}

// Plugin registers the TweenCompleted event and the animator systems for
// the built-in lens targets. Add it to the app before spawning animators.
func Plugin(app *byke.App) {
	app.AddEvent(byke.EventType[TweenCompleted]())

	RegisterLensTarget[bykebiten.Transform](app)
	RegisterLensTarget[bykebiten.ColorTint](app)
	RegisterLensTarget[bykebiten.Fill](app)
	RegisterLensTarget[bykebiten.Stroke](app)
}

// RegisterLensTarget adds the animator tick system for component type C.
// Call this once for every custom component you want to animate.
func RegisterLensTarget[C byke.IsComponent[C]](app *byke.App) {
	byke.ValidateComponent[Animator[C]]()

	app.AddSystems(byke.Update, byke.System(animateSystem[C]).InSet(Systems))
}

func animateSystem[C byke.IsComponent[C]](
	vt byke.VirtualTime,
	completed *byke.EventWriter[TweenCompleted],
	animators byke.Query[struct {
		byke.EntityId
		Animator *Animator[C]
		Target   *C
	}],
) {
	for item := range animators.Items() {
		a := item.Animator
		if a.Lens == nil {
			continue
		}

		ratio, cycles := a.Tick(vt.Delta)

		ease := a.Ease
		if ease == nil {
			ease = Linear
		}

		a.Lens.Lerp(item.Target, ease(ratio))

		for range cycles {
			completed.Write(TweenCompleted{Entity: item.EntityId})
		}
	}
}
