// Package config declares the kong CLI tree.
package config

import "github.com/padbind/padbind/internal/cmd"

// LogOptions are shared flags controlling logger construction.
type LogOptions struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"PADBIND_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"PADBIND_LOG_FILE"`
}

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log    LogOptions `embed:"" prefix:"log."`
	Config string     `help:"Path to a config file (json/yaml/toml)" env:"PADBIND_CONFIG"`

	Run     cmd.Run     `cmd:"" default:"withargs" help:"Sample the gamepad and translate to host input"`
	Init    cmd.Init    `cmd:"" name:"init" help:"Write a bindings file template"`
	Buttons cmd.Buttons `cmd:"" help:"List every controller button usable in bindings"`
	Version cmd.Version `cmd:"" help:"Print version information"`
}
