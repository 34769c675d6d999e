package app

import "horbital/internal/render"

// Wire constructs the dependency graph: defaults from the optional config
// file plus the gonum/plot renderer.
func Wire(configPath string) (*App, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return nil, err
	}
	return New(render.New(), cfg), nil
}
