package config

import (
	"fmt"
	"time"
)

const (
	FATAL_LEVEL = iota
	ERROR_LEVEL
	WARN_LEVEL
	INFO_LEVEL
	DEBUG_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < FATAL_LEVEL || c.Level > DEBUG_LEVEL {
		return fmt.Errorf("log level %d out of range [%d, %d]", c.Level, FATAL_LEVEL, DEBUG_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("log time format is empty")
	}
	// a layout without any reference field formats every timestamp identically
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == time.Unix(86400*400+3723, 0).UTC().Format(c.TimeFormat) {
		return fmt.Errorf("log time format %q has no time fields", c.TimeFormat)
	}
	return nil
}
