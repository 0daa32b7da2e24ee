package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/padbind/padbind/bindings"
	"github.com/padbind/padbind/internal/configpaths"
)

// Init writes a bindings file template seeded with the demo table.
type Init struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to bindings.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run generates the template.
func (c *Init) Run(logger *slog.Logger) error {
	dest := c.Output
	if dest == "" {
		dest = "bindings." + c.Format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	data, err := bindings.Default().Encode(c.Format)
	if err != nil {
		return err
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	logger.Info("bindings template written", "path", dest)
	fmt.Println(dest)
	return nil
}
