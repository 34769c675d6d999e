// Package app wires application dependencies for the CLI.
//
// It loads optional TOML defaults, builds the rendering backend, and
// exposes both via the App struct for commands to use.
package app
