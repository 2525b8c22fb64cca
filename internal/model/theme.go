package model

// ThemeMode selects light, dark, or follow-the-system rendering.
type ThemeMode string

const (
	ModeSystem ThemeMode = "system"
	ModeLight  ThemeMode = "light"
	ModeDark   ThemeMode = "dark"
)

// BackgroundType selects how BackgroundConfig.Value is interpreted.
type BackgroundType string

const (
	BackgroundGradient BackgroundType = "gradient"
	BackgroundSolid    BackgroundType = "solid"
	BackgroundImage    BackgroundType = "image"
)

// BackgroundConfig describes one background.
type BackgroundConfig struct {
	Type    BackgroundType `json:"type"`
	Value   string         `json:"value"`
	Blur    *float64       `json:"blur,omitempty"`
	Opacity *float64       `json:"opacity,omitempty"`
}

// ThemeConfig is the per-viewer theme.
type ThemeConfig struct {
	Mode            ThemeMode        `json:"mode"`
	LightBackground BackgroundConfig `json:"lightBackground"`
	DarkBackground  BackgroundConfig `json:"darkBackground"`
}

// DefaultTheme is the built-in theme used when neither a user theme nor an
// admin default exists.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Mode: ModeSystem,
		LightBackground: BackgroundConfig{
			Type:  BackgroundGradient,
			Value: "bg-gradient-to-br from-slate-100 via-blue-50 to-indigo-100",
		},
		DarkBackground: BackgroundConfig{
			Type:  BackgroundGradient,
			Value: "bg-gradient-to-br from-gray-900 via-slate-900 to-zinc-900",
		},
	}
}

// Validate checks the closed enumerations.
func (t ThemeConfig) Validate() error {
	switch t.Mode {
	case ModeSystem, ModeLight, ModeDark:
	default:
		return &ValidationError{Field: "mode", Message: "must be one of system, light, dark"}
	}
	if err := t.LightBackground.validate("lightBackground"); err != nil {
		return err
	}
	return t.DarkBackground.validate("darkBackground")
}

func (b BackgroundConfig) validate(field string) error {
	switch b.Type {
	case BackgroundGradient, BackgroundSolid, BackgroundImage:
		return nil
	}
	return &ValidationError{Field: field + ".type", Message: "must be one of gradient, solid, image"}
}

// Background returns the background for the effective mode. The system mode
// resolves through systemDark.
func (t ThemeConfig) Background(systemDark bool) BackgroundConfig {
	switch t.Mode {
	case ModeDark:
		return t.DarkBackground
	case ModeLight:
		return t.LightBackground
	}
	if systemDark {
		return t.DarkBackground
	}
	return t.LightBackground
}
