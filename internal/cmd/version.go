package cmd

import (
	"fmt"
	"runtime/debug"
)

// Version prints build information.
type Version struct{}

func (c *Version) Run() error {
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Println("padbind", version)
	return nil
}
