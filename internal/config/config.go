// Package config loads recall settings from defaults, an optional YAML file
// and RECALL_* environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings. Revision intervals are fixed and are not
// part of it.
type Config struct {
	DBPath         string   `mapstructure:"db_path" validate:"required"`
	Users          []string `mapstructure:"users" validate:"required,min=1,unique,dive,required"`
	LogCalls       bool     `mapstructure:"log_calls"`
	RemindSchedule string   `mapstructure:"remind_schedule" validate:"required"`
	Timezone       string   `mapstructure:"timezone"`
}

// DefaultUsers is the fixed identity list offered when none is configured.
var DefaultUsers = []string{"1", "2", "3", "4", "5"}

const DefaultRemindSchedule = "0 8 * * *"

// Location resolves Timezone. Empty means the machine's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
