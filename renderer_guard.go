package lunar

import (
	"fmt"
)

// Renderer is the installed draw backend. Only one renderer may be
// installed into an App.
type Renderer struct {
	Name    string
	Backend DrawBackend
}

// UseRenderer installs backend under name. Installing a second renderer
// panics. Re-installing under the same name keeps the first backend.
func (app *App) UseRenderer(name string, backend DrawBackend) *App {
	ensureSingleRenderer(app, name, backend)
	return app
}

func ensureSingleRenderer(app *App, name string, backend DrawBackend) {
	if app == nil {
		panic("ensureSingleRenderer: app is nil")
	}
	if backend == nil {
		panic(fmt.Sprintf("renderer %s has no backend", name))
	}
	if r, ok := Resource[Renderer](app); ok {
		if r.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", r.Name, name)
			panic(fmt.Sprintf("Multiple renderers installed: %s and %s", r.Name, name))
		}
		return
	}
	app.addResources(&Renderer{Name: name, Backend: backend})
}

// RendererModule installs a renderer while the app is built.
type RendererModule struct {
	Name    string
	Backend DrawBackend
}

func (m RendererModule) Install(app *App, cmd *Commands) {
	app.UseRenderer(m.Name, m.Backend)
}
