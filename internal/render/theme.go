package render

import "fmt"

// Theme is the explicit palette configuration handed to the renderer.
// It is plain data, never process-global state, so two renderers with
// different themes can coexist.
type Theme struct {
	Name string

	// ANSI escape sequences; all empty for the "none" theme
	Heading string
	Bullet  string
	Dim     string
	Reset   string
}

// LightTheme suits light terminal backgrounds
func LightTheme() Theme {
	return Theme{
		Name:    "light",
		Heading: "\033[1;34m", // bold blue
		Bullet:  "\033[33m",   // yellow
		Dim:     "\033[90m",
		Reset:   "\033[0m",
	}
}

// DarkTheme uses bright variants that stay readable on dark backgrounds
func DarkTheme() Theme {
	return Theme{
		Name:    "dark",
		Heading: "\033[1;96m", // bold bright cyan
		Bullet:  "\033[93m",   // bright yellow
		Dim:     "\033[37m",
		Reset:   "\033[0m",
	}
}

// NoTheme disables styling (plain output, pipes, dumb terminals)
func NoTheme() Theme {
	return Theme{Name: "none"}
}

// ThemeByName resolves a configured theme name
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "light", "":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	case "none", "plain":
		return NoTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme: %s (supported: light, dark, none)", name)
	}
}
