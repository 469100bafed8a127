package lunar

import (
	"time"
)

type Time struct {
	Start   time.Time
	Time    time.Time
	Dt      time.Duration
	Elapsed time.Duration
}

// DtSeconds is the duration of the last frame in seconds.
func (t *Time) DtSeconds() float32 {
	return float32(t.Dt.Seconds())
}

// ElapsedSeconds is the time since the first frame in seconds.
func (t *Time) ElapsedSeconds() float32 {
	return float32(t.Elapsed.Seconds())
}

type TimeModule struct {
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type frameClock struct {
	now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}
	start := clock()
	cmd.AddResources(
		&Time{
			Start: start,
			Time:  start,
		},
		&frameClock{now: clock},
	)
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude).
			RunAlways(),
	)
}

func timeSystem(clock *frameClock, timeResource *Time) {
	now := clock.now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Elapsed = now.Sub(timeResource.Start)
	timeResource.Time = now
}
