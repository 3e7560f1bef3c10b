package main

import (
	"fmt"
	"runtime/debug"
)

var Version = ""

const descriptionTemplate = `Turn images into text art.
  Version: %s
`

func Description() string {
	return fmt.Sprintf(descriptionTemplate, Version)
}

func init() {
	if Version != "" {
		return
	}
	Version = "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Version = v
		}
	}
}
