package toast

import "time"

// Config holds the process-wide engine defaults. It is created once at
// engine startup and mutated only through Manager.UpdateConfig (or the
// convenience setters wrapping it). Struct tags allow loading it from the
// environment or a YAML file via pkg/config.
type Config struct {
	Position         string        `env:"TOAST_POSITION" envDefault:"top-right" yaml:"position"`
	Duration         time.Duration `env:"TOAST_DURATION" envDefault:"5s" yaml:"duration"`
	MaxNotifications int           `env:"TOAST_MAX_NOTIFICATIONS" envDefault:"5" yaml:"max_notifications"`

	AutoClose          bool `env:"TOAST_AUTO_CLOSE" envDefault:"true" yaml:"auto_close"`
	Progress           bool `env:"TOAST_PROGRESS" envDefault:"true" yaml:"progress"`
	ClickToClose       bool `env:"TOAST_CLICK_TO_CLOSE" envDefault:"true" yaml:"click_to_close"`
	SwipeToClose       bool `env:"TOAST_SWIPE_TO_CLOSE" envDefault:"true" yaml:"swipe_to_close"`
	KeyboardNavigation bool `env:"TOAST_KEYBOARD_NAVIGATION" envDefault:"true" yaml:"keyboard_navigation"`
	Accessibility      bool `env:"TOAST_ACCESSIBILITY" envDefault:"true" yaml:"accessibility"`
	Analytics          bool `env:"TOAST_ANALYTICS" envDefault:"false" yaml:"analytics"`
	Persistence        bool `env:"TOAST_PERSISTENCE" envDefault:"false" yaml:"persistence"`
	Sound              bool `env:"TOAST_SOUND" envDefault:"false" yaml:"sound"`
	Vibration          bool `env:"TOAST_VIBRATION" envDefault:"false" yaml:"vibration"`

	// PauseExtendsDeadline controls whether pausing a notification suspends
	// its auto-close deadline. When false, only the visual progress freezes
	// and the deadline keeps running, matching toast implementations that
	// never rearm the close timer on hover.
	PauseExtendsDeadline bool `env:"TOAST_PAUSE_EXTENDS_DEADLINE" envDefault:"true" yaml:"pause_extends_deadline"`

	AnimationDuration time.Duration `env:"TOAST_ANIMATION_DURATION" envDefault:"300ms" yaml:"animation_duration"`
	AnimationEasing   string        `env:"TOAST_ANIMATION_EASING" envDefault:"ease" yaml:"animation_easing"`
	SoundFile         string        `env:"TOAST_SOUND_FILE" envDefault:"" yaml:"sound_file"`
	VibrationPattern  []int         `env:"TOAST_VIBRATION_PATTERN" envDefault:"100,50,100" envSeparator:"," yaml:"vibration_pattern"`

	StorageKey             string `env:"TOAST_STORAGE_KEY" envDefault:"toastkit:history" yaml:"storage_key"`
	MaxStoredNotifications int    `env:"TOAST_MAX_STORED_NOTIFICATIONS" envDefault:"50" yaml:"max_stored_notifications"`
}

// DefaultConfig returns the engine defaults used when no configuration is
// supplied. Matches the envDefault values on Config.
func DefaultConfig() Config {
	return Config{
		Position:               "top-right",
		Duration:               5 * time.Second,
		MaxNotifications:       5,
		AutoClose:              true,
		Progress:               true,
		ClickToClose:           true,
		SwipeToClose:           true,
		KeyboardNavigation:     true,
		Accessibility:          true,
		Analytics:              false,
		Persistence:            false,
		Sound:                  false,
		Vibration:              false,
		PauseExtendsDeadline:   true,
		AnimationDuration:      300 * time.Millisecond,
		AnimationEasing:        "ease",
		VibrationPattern:       []int{100, 50, 100},
		StorageKey:             "toastkit:history",
		MaxStoredNotifications: 50,
	}
}

// ConfigPatch describes a partial configuration update. Nil fields are left
// untouched, giving a single auditable "what changed" surface that every
// convenience setter funnels through.
type ConfigPatch struct {
	Position         *string
	Duration         *time.Duration
	MaxNotifications *int

	AutoClose          *bool
	Progress           *bool
	ClickToClose       *bool
	SwipeToClose       *bool
	KeyboardNavigation *bool
	Accessibility      *bool
	Analytics          *bool
	Persistence        *bool
	Sound              *bool
	Vibration          *bool

	PauseExtendsDeadline *bool

	AnimationDuration *time.Duration
	AnimationEasing   *string
	SoundFile         *string
	VibrationPattern  *[]int

	StorageKey             *string
	MaxStoredNotifications *int
}

// apply merges the patch into cfg, skipping values that would violate basic
// invariants (negative default duration, non-positive capacity).
func (p ConfigPatch) apply(cfg *Config) {
	if p.Position != nil {
		cfg.Position = *p.Position
	}
	if p.Duration != nil && *p.Duration >= 0 {
		cfg.Duration = *p.Duration
	}
	if p.MaxNotifications != nil && *p.MaxNotifications > 0 {
		cfg.MaxNotifications = *p.MaxNotifications
	}
	if p.AutoClose != nil {
		cfg.AutoClose = *p.AutoClose
	}
	if p.Progress != nil {
		cfg.Progress = *p.Progress
	}
	if p.ClickToClose != nil {
		cfg.ClickToClose = *p.ClickToClose
	}
	if p.SwipeToClose != nil {
		cfg.SwipeToClose = *p.SwipeToClose
	}
	if p.KeyboardNavigation != nil {
		cfg.KeyboardNavigation = *p.KeyboardNavigation
	}
	if p.Accessibility != nil {
		cfg.Accessibility = *p.Accessibility
	}
	if p.Analytics != nil {
		cfg.Analytics = *p.Analytics
	}
	if p.Persistence != nil {
		cfg.Persistence = *p.Persistence
	}
	if p.Sound != nil {
		cfg.Sound = *p.Sound
	}
	if p.Vibration != nil {
		cfg.Vibration = *p.Vibration
	}
	if p.PauseExtendsDeadline != nil {
		cfg.PauseExtendsDeadline = *p.PauseExtendsDeadline
	}
	if p.AnimationDuration != nil && *p.AnimationDuration >= 0 {
		cfg.AnimationDuration = *p.AnimationDuration
	}
	if p.AnimationEasing != nil {
		cfg.AnimationEasing = *p.AnimationEasing
	}
	if p.SoundFile != nil {
		cfg.SoundFile = *p.SoundFile
	}
	if p.VibrationPattern != nil {
		cfg.VibrationPattern = *p.VibrationPattern
	}
	if p.StorageKey != nil && *p.StorageKey != "" {
		cfg.StorageKey = *p.StorageKey
	}
	if p.MaxStoredNotifications != nil && *p.MaxStoredNotifications > 0 {
		cfg.MaxStoredNotifications = *p.MaxStoredNotifications
	}
}
