package model

// LevelUpThreshold is the XP needed to advance one level.
const LevelUpThreshold = 100

// Progression is the single player's level, XP and streak counters.
type Progression struct {
	Level         int
	XP            int
	CurrentStreak int
	LongestStreak int
}

// NewProgression returns the starting progression: level 1, everything else zero.
func NewProgression() Progression {
	return Progression{Level: 1}
}

// Theme is the stored UI colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid reports whether th is a known preference.
func (th Theme) IsValid() bool {
	switch th {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Resolve maps the preference to a concrete scheme given the host's scheme.
// An unknown host scheme resolves to light.
func (th Theme) Resolve(system Theme) Theme {
	if th == ThemeLight || th == ThemeDark {
		return th
	}
	if system == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}
