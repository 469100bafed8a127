package lunar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeModule(t *testing.T) {
	clock := newFakeClock(100 * time.Millisecond)
	app := NewAppBuilder().UseModule(TimeModule{Clock: clock.Now}).Build()

	tm, ok := Resource[Time](app)
	require.True(t, ok)
	assert.Equal(t, tm.Start, tm.Time)
	assert.Zero(t, tm.Dt)

	app.RunFrames(3)

	assert.Equal(t, 100*time.Millisecond, tm.Dt)
	assert.Equal(t, 300*time.Millisecond, tm.Elapsed)
	assert.InDelta(t, 0.1, tm.DtSeconds(), 1e-6)
	assert.InDelta(t, 0.3, tm.ElapsedSeconds(), 1e-6)
}

func TestTimeModule_RunsBeforeEverythingElse(t *testing.T) {
	clock := newFakeClock(time.Second)
	app := NewAppBuilder().UseModule(TimeModule{Clock: clock.Now}).Build()

	var seen time.Duration
	app.UseSystem(System(func(tm *Time) { seen = tm.Elapsed }).InStage(PreUpdate))
	app.Update()

	assert.Equal(t, time.Second, seen)
}
