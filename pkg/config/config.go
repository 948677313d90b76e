// Package config loads command line presets.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"
)

// Preset mirrors the pathedit command line flags.
type Preset struct {
	InputFilePath  string  `json:"input" mapstructure:"input"`
	Data           string  `json:"data" mapstructure:"data"`
	Sample         string  `json:"sample" mapstructure:"sample"`
	SVG            bool    `json:"svg" mapstructure:"svg"`
	Simplify       bool    `json:"simplify" mapstructure:"simplify"`
	OutputFilePath string  `json:"output" mapstructure:"output"`
	ScaleX         float64 `json:"scaleX" mapstructure:"scaleX"`
	ScaleY         float64 `json:"scaleY" mapstructure:"scaleY"`
	MoveX          float64 `json:"moveX" mapstructure:"moveX"`
	MoveY          float64 `json:"moveY" mapstructure:"moveY"`
	FitWidth       float64 `json:"fitWidth" mapstructure:"fitWidth"`
	FitHeight      float64 `json:"fitHeight" mapstructure:"fitHeight"`
	Diff           bool    `json:"diff" mapstructure:"diff"`
	List           bool    `json:"list" mapstructure:"list"`
	View           bool    `json:"view" mapstructure:"view"`
	ShowOrigin     bool    `json:"showOrigin" mapstructure:"showOrigin"`
	StrokeWidth    float64 `json:"strokeWidth" mapstructure:"strokeWidth"`
	Verbose        bool    `json:"verbose" mapstructure:"verbose"`
}

// Default returns the preset used when no flag is given.
func Default() Preset {
	return Preset{
		ScaleX:      1,
		ScaleY:      1,
		ShowOrigin:  true,
		StrokeWidth: 2,
	}
}

func setDefaults(v *viper.Viper, p Preset) {
	v.SetDefault("input", p.InputFilePath)
	v.SetDefault("data", p.Data)
	v.SetDefault("sample", p.Sample)
	v.SetDefault("svg", p.SVG)
	v.SetDefault("simplify", p.Simplify)
	v.SetDefault("output", p.OutputFilePath)
	v.SetDefault("scaleX", p.ScaleX)
	v.SetDefault("scaleY", p.ScaleY)
	v.SetDefault("moveX", p.MoveX)
	v.SetDefault("moveY", p.MoveY)
	v.SetDefault("fitWidth", p.FitWidth)
	v.SetDefault("fitHeight", p.FitHeight)
	v.SetDefault("diff", p.Diff)
	v.SetDefault("list", p.List)
	v.SetDefault("view", p.View)
	v.SetDefault("showOrigin", p.ShowOrigin)
	v.SetDefault("strokeWidth", p.StrokeWidth)
	v.SetDefault("verbose", p.Verbose)
}

// Load reads a preset file on top of base. The format follows the file
// extension (json, yaml, toml...); keys missing from the file keep base values.
func Load(path string, base Preset) (Preset, error) {
	v := viper.New()
	setDefaults(v, base)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return base, fmt.Errorf("error reading preset file: %w", err)
	}

	result := base
	if err := v.Unmarshal(&result); err != nil {
		return base, fmt.Errorf("error decoding preset file: %w", err)
	}

	if err := result.Validate(); err != nil {
		return base, err
	}

	return result, nil
}

// Validate checks values that flags cannot constrain.
func (p Preset) Validate() error {
	if p.StrokeWidth <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", p.StrokeWidth)
	}

	if p.FitWidth < 0 || p.FitHeight < 0 {
		return fmt.Errorf("fit size must not be negative, got %vx%v", p.FitWidth, p.FitHeight)
	}

	return nil
}

// Marshal renders p as an indented JSON preset.
func (p Preset) Marshal() ([]byte, error) {
	return json.MarshalIndent(p, "", "\t")
}
