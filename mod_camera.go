package lunar

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraRig is a keyboard-driven orbit camera. X, Y, Z offset the scene in
// view space. Pitch and Yaw rotate it.
type CameraRig struct {
	X, Y, Z    float32
	Pitch, Yaw float32

	TranslateSpeed float32
	RotateSpeed    float32

	FovY         float32
	Near, Far    float32
	ViewDistance float32
	Aspect       float32

	MinPitch, MaxPitch float32
}

func NewCameraRig(cfg CameraConfig, width, height int) *CameraRig {
	return &CameraRig{
		TranslateSpeed: cfg.TranslateSpeed,
		RotateSpeed:    cfg.RotateSpeed,
		FovY:           mgl32.DegToRad(cfg.FovYDegrees),
		Near:           cfg.Near,
		Far:            cfg.Far,
		ViewDistance:   cfg.ViewDistance,
		Aspect:         float32(width) / float32(height),
		MinPitch:       0,
		MaxPitch:       mgl32.DegToRad(180),
	}
}

func (c *CameraRig) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

func (c *CameraRig) View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.ViewDistance)
}

// ViewProjection is P·V·T(x, y, z)·Rx(pitch)·Ry(yaw).
func (c *CameraRig) ViewProjection() mgl32.Mat4 {
	m := c.Projection().Mul4(c.View())
	m = m.Mul4(mgl32.Translate3D(c.X, c.Y, c.Z))
	m = m.Mul4(mgl32.HomogRotate3DX(c.Pitch))
	m = m.Mul4(mgl32.HomogRotate3DY(c.Yaw))
	return m
}

// Steer applies held keys for dt seconds and clamps the pitch.
func (c *CameraRig) Steer(pressed *[KeyCount]bool, dt float32) {
	move := dt * c.TranslateSpeed
	turn := dt * c.RotateSpeed

	if pressed[KeyA] {
		c.X += move
	}
	if pressed[KeyD] {
		c.X -= move
	}
	if pressed[KeyS] {
		c.Y += move
	}
	if pressed[KeyW] {
		c.Y -= move
	}
	if pressed[KeyLeftControl] {
		c.Z += move
	}
	if pressed[KeyLeftShift] {
		c.Z -= move
	}
	if pressed[KeyUp] {
		c.Pitch += turn
	}
	if pressed[KeyDown] {
		c.Pitch -= turn
	}
	if pressed[KeyLeft] {
		c.Yaw += turn
	}
	if pressed[KeyRight] {
		c.Yaw -= turn
	}

	c.Pitch = mgl32.Clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// Resize recomputes the aspect ratio and reports whether it changed.
func (c *CameraRig) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	aspect := float32(width) / float32(height)
	if aspect == c.Aspect {
		return false
	}
	c.Aspect = aspect
	return true
}

type CameraModule struct {
	Config CameraConfig
	Window WindowConfig
}

func (m CameraModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewCameraRig(m.Config, m.Window.Width, m.Window.Height))
	app.UseSystem(
		System(cameraControlSystem).
			InStage(Update).
			RunAlways(),
	)
}

func cameraControlSystem(cmd *Commands, input *Input, time *Time, cam *CameraRig) {
	if input.WindowWidth != 0 && cam.Resize(input.WindowWidth, input.WindowHeight) {
		cmd.Logger().Infof("Window was resized to %dx%d", input.WindowWidth, input.WindowHeight)
	}

	dt := time.DtSeconds()
	if dt <= 0 {
		return
	}
	cam.Steer(&input.Pressed, dt)
}
