package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/naoina/toml"

	"github.com/you-not-fish/pikgo"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type renderConfig struct {
	DarkMode    bool
	Scale       float64 `toml:",omitempty"`
	FixedWidth  float64 `toml:",omitempty"`
	FixedHeight float64 `toml:",omitempty"`
	Class       string  `toml:",omitempty"`
}

type logConfig struct {
	Level  string // debug, info, warn or error
	Format string // text or json
}

type pikgoConfig struct {
	Render renderConfig
	Log    logConfig
}

var defaultConfig = pikgoConfig{
	Log: logConfig{Level: "warn", Format: "text"},
}

func loadConfig(file string, cfg *pikgoConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// options converts the render section into library options.
func (c *renderConfig) options() *pikgo.Options {
	return &pikgo.Options{
		DarkMode:    c.DarkMode,
		Scale:       c.Scale,
		FixedWidth:  c.FixedWidth,
		FixedHeight: c.FixedHeight,
		Class:       c.Class,
	}
}

// dumpConfig writes cfg as TOML.
func dumpConfig(w io.Writer, cfg *pikgoConfig) error {
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
