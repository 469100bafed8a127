package lunar

// SceneModule loads a scene, animates its helicopters during Update and
// draws it during Render. It needs Time, CameraRig and Renderer resources.
type SceneModule struct {
	Def *SceneDef
}

type RenderStats struct {
	Frames    uint64
	DrawCalls uint64
	LastDraws int
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	if m.Def == nil {
		panic("SceneModule: no scene definition")
	}
	scene, err := LoadScene(m.Def)
	if err != nil {
		panic(err)
	}
	app.Logger().Infof("scene loaded: %d nodes, %d helicopters", scene.Graph.Len(), len(scene.Fleet))
	if app.Logger().DebugEnabled() {
		app.Logger().Debugf("scene graph:\n%s", scene.Graph.Dump(scene.Root))
	}

	cmd.AddResources(scene, &RenderStats{})
	app.UseSystem(
		System(helicopterAnimationSystem).
			InStage(Update).
			RunAlways(),
	)
	app.UseSystem(
		System(sceneRenderSystem).
			InStage(Render).
			RunAlways(),
	)
}

func helicopterAnimationSystem(time *Time, scene *Scene) {
	scene.Animate(time.ElapsedSeconds())
}

func sceneRenderSystem(cmd *Commands, scene *Scene, cam *CameraRig, renderer *Renderer, stats *RenderStats) {
	draws := scene.Draw(cam.ViewProjection(), renderer.Backend)

	stats.Frames++
	stats.LastDraws = draws
	stats.DrawCalls += uint64(draws)
	cmd.Logger().Debugf("frame %d: %d draws", stats.Frames, draws)
}
