// Package config loads the settings of the chronometer command.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	cmtime "github.com/nowlow/chronometer/time"
)

// DefaultPath is read when no other path is given.
const DefaultPath = "chronometer.json"

// Config describes how the chronometer command is set up.
type Config struct {
	// Clock names the clock source, see cmtime.ClockByName.
	Clock string

	// AutoStart starts the chronometer before any command is read.
	AutoStart bool

	// Verbosity is the highest log level written.
	Verbosity int

	// Prompt is written before each command. Empty disables it.
	Prompt string
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Clock:  "monotonic",
		Prompt: "> ",
	}
}

// UnmarshalJSON implements encoding/json.Unmarshaler.
func (c *Config) UnmarshalJSON(input []byte) error {
	d := Default()
	t := struct {
		Clock     *string
		AutoStart *bool
		Verbosity *int
		Prompt    *string
	}{}

	dec := json.NewDecoder(bytes.NewReader(input))
	dec.DisallowUnknownFields()
	if e := dec.Decode(&t); e != nil {
		return e
	}

	if t.Clock != nil {
		d.Clock = *t.Clock
	}
	if _, e := cmtime.ClockByName(d.Clock); e != nil {
		return e
	}
	if t.AutoStart != nil {
		d.AutoStart = *t.AutoStart
	}
	if t.Verbosity != nil {
		d.Verbosity = *t.Verbosity
	}
	if t.Prompt != nil {
		d.Prompt = *t.Prompt
	}

	*c = d
	return nil
}

// FromReader decodes a Config from r.
func FromReader(r io.Reader) (Config, error) {
	var c Config
	if e := json.NewDecoder(r).Decode(&c); e != nil {
		return Config{}, fmt.Errorf("decoding config: %w", e)
	}
	return c, nil
}

// Load reads the Config at path, falling back to Default if the file does not
// exist.
func Load(path string) (Config, error) {
	f, e := os.Open(path)
	if errors.Is(e, os.ErrNotExist) {
		return Default(), nil
	} else if e != nil {
		return Config{}, e
	}
	defer f.Close()

	return FromReader(f)
}
