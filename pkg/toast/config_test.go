package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigPatch_ApplyMergesOnlySetFields(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	pos := "bottom-center"
	d := 8 * time.Second

	ConfigPatch{Position: &pos, Duration: &d}.apply(&cfg)

	assert.Equal(t, "bottom-center", cfg.Position)
	assert.Equal(t, 8*time.Second, cfg.Duration)
	// Everything else keeps its default.
	assert.Equal(t, 5, cfg.MaxNotifications)
	assert.True(t, cfg.AutoClose)
}

func TestConfigPatch_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	negative := -time.Second
	zero := 0
	empty := ""

	ConfigPatch{
		Duration:               &negative,
		MaxNotifications:       &zero,
		StorageKey:             &empty,
		MaxStoredNotifications: &zero,
	}.apply(&cfg)

	assert.Equal(t, 5*time.Second, cfg.Duration)
	assert.Equal(t, 5, cfg.MaxNotifications)
	assert.Equal(t, "toastkit:history", cfg.StorageKey)
	assert.Equal(t, 50, cfg.MaxStoredNotifications)
}

func TestConfigPatch_ZeroDurationIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	zero := time.Duration(0)

	ConfigPatch{Duration: &zero}.apply(&cfg)

	assert.Equal(t, time.Duration(0), cfg.Duration, "zero default duration means sticky notifications")
}

func TestConfigPatch_FlagToggles(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	on := true
	off := false

	ConfigPatch{
		AutoClose:            &off,
		Accessibility:        &off,
		Analytics:            &on,
		Persistence:          &on,
		PauseExtendsDeadline: &off,
	}.apply(&cfg)

	assert.False(t, cfg.AutoClose)
	assert.False(t, cfg.Accessibility)
	assert.True(t, cfg.Analytics)
	assert.True(t, cfg.Persistence)
	assert.False(t, cfg.PauseExtendsDeadline)
}
