package app

import "horbital/internal/domain"

// App bundles the rendering backend and resolved defaults for the CLI.
type App struct {
	Renderer domain.Renderer
	Defaults Config
}

// New builds an App from its parts.
func New(renderer domain.Renderer, defaults Config) *App {
	return &App{Renderer: renderer, Defaults: defaults}
}
