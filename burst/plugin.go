package burst

import "github.com/oliverbestmann/byke"

// Systems contains the spawn and update systems of all effects.
var Systems = &byke.SystemSet{}

// Plugin registers the particle effect systems and the EffectFinished event.
func Plugin(app *byke.App) {
	app.AddEvent(byke.EventType[EffectFinished]())

	app.AddSystems(byke.Update, byke.
		System(spawnSystem, updateSystem).
		Chain().
		InSet(Systems))

	app.AddSystems(byke.PreRender, renderEffectsSystem)
}
