package tui

import (
	"github.com/cipherlist/cipherlist/internal/resolver"
)

var runApp = func(app *App) error {
	return app.Run()
}

// Run starts the TUI with an initial expression.
func Run(r *resolver.Resolver, expr, theme string) error {
	app := New(r)

	applyTheme(theme)

	if expr != "" {
		app.applyExpression(expr)
	}

	return runApp(app)
}

func applyTheme(theme string) {
	switch theme {
	case "dark":
		// Dark theme is the default
	case "light":
		// Light theme adjustments
	default:
		// Default theme
	}
}
