package ebird

import (
	"encoding/json"
	"io"
	"os"

	"github.com/tphakala/birdgroups/internal/errors"
)

const componentName = "ebird"

// DecodeObservations decodes a JSON array of observation records.
// A missing or null comName decodes to the empty string.
func DecodeObservations(r io.Reader) ([]Observation, error) {
	var observations []Observation
	if err := json.NewDecoder(r).Decode(&observations); err != nil {
		return nil, errors.Newf("failed to decode eBird observations: %w", err).
			Category(errors.CategoryFileParsing).
			Component(componentName).
			Build()
	}
	return observations, nil
}

// LoadObservationsFile reads observation records saved from the eBird API.
// The path "-" reads from stdin.
func LoadObservationsFile(path string) ([]Observation, error) {
	if path == "-" {
		return DecodeObservations(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Newf("failed to open observations file: %w", err).
			Category(errors.CategoryFileIO).
			Component(componentName).
			FileContext(path).
			Build()
	}
	defer func() { _ = f.Close() }()

	return DecodeObservations(f)
}
