// Package samples is a small built-in catalog of path data.
package samples

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed samples.json
var samples []byte

// DefaultName is the sample loaded when nothing else is given.
const DefaultName = "default"

var ErrNotFound = errors.New("sample not found")

// Sample is a named piece of path data.
type Sample struct {
	Name        string
	Description string
	Data        string
}

func decodeSamples() ([]Sample, error) {
	var result []Sample
	if err := json.Unmarshal(samples, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// All returns the whole catalog in file order.
func All() ([]Sample, error) {
	return decodeSamples()
}

func Get(name string) (*Sample, error) {
	samples, err := decodeSamples()
	if err != nil {
		return nil, err
	}

	for _, sample := range samples {
		if sample.Name == name {
			return &sample, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists the sample names in file order.
func Names() ([]string, error) {
	samples, err := decodeSamples()
	if err != nil {
		return nil, err
	}

	result := make([]string, len(samples))
	for i, s := range samples {
		result[i] = s.Name
	}

	return result, nil
}
