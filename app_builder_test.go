package lunar

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type MockModule2 struct {
	installed bool
}

func (m *MockModule2) Install(app *App, commands *Commands) {
	m.installed = true
}
func TestAppBuilder_Stateless(t *testing.T) {
	builder := NewAppBuilder()
	app := builder.Build()

	if app.stateful != false {
		t.Errorf("Expected stateful to be false, got %v", app.stateful)
	}
	if app.initialState != 0 {
		t.Errorf("Expected initialState to be 0, got %v", app.initialState)
	}
	if app.finalState != 0 {
		t.Errorf("Expected finalState to be 0, got %v", app.finalState)
	}
}

func TestAppBuilder_UseStates(t *testing.T) {
	builder := NewAppBuilder()
	builder.UseStates(1, 10)

	app := builder.Build()

	if app.stateful != true {
		t.Errorf("Expected stateful to be true, got %v", app.stateful)
	}
	if app.initialState != 1 {
		t.Errorf("Expected initialState to be 1, got %v", app.initialState)
	}
	if app.finalState != 10 {
		t.Errorf("Expected finalState to be 10, got %v", app.finalState)
	}
	if len(app.systems[Update.Name]) != 10 {
		t.Errorf("Expected 10 states in stage %s, got %v", Update.Name, len(app.systems[Update.Name]))
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if mockModule.installed {
		t.Errorf("Expected module to be installed only on Build")
	}
}

func TestAppBuilder_Build(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	mockModule2 := &MockModule2{}
	builder.UseModule(mockModule, mockModule2)

	app := builder.Build()

	if !mockModule.installed || !mockModule2.installed {
		t.Errorf("Expected all modules to be installed, got %v and %v", mockModule.installed, mockModule2.installed)
	}
	if len(app.stages) != len(defaultStages) {
		t.Errorf("Expected %d stages, got %d", len(defaultStages), len(app.stages))
	}
	for i, stage := range defaultStages {
		if app.stages[i] != stage {
			t.Errorf("Expected stage %d to be %s, got %s", i, stage.Name, app.stages[i].Name)
		}
	}
}
