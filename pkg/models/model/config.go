package model

import (
	"fmt"
	"strings"
)

// Config is an On/Off command line switch.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":   On,
	"1":    On,
	"true": On,

	"off":   Off,
	"0":     Off,
	"false": Off,
}

func NewConfig(s string) (Config, error) {
	c, ok := configName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Off, fmt.Errorf("%q is neither on nor off", s)
	}
	return c, nil
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
