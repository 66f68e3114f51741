// loader.go reads alternative registries from YAML files
package birdgroups

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/birdgroups/internal/errors"
)

// registryFile is the on-disk shape of a registry:
//
//	groups:
//	  - name: Dabbling Ducks
//	    species: [Mallard, Gadwall]
type registryFile struct {
	Groups Registry `yaml:"groups"`
}

// LoadRegistry decodes a YAML registry. It checks the document shape only;
// pass the result to NewIndex for the species integrity checks.
func LoadRegistry(r io.Reader) (Registry, error) {
	var doc registryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Newf("failed to parse registry: %w", err).
			Category(errors.CategoryFileParsing).
			Component(componentName).
			Build()
	}

	if len(doc.Groups) == 0 {
		return nil, errors.Newf("registry defines no groups").
			Category(errors.CategoryValidation).
			Component(componentName).
			Build()
	}

	return doc.Groups, nil
}

// LoadRegistryFile reads a YAML registry from path.
func LoadRegistryFile(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Newf("failed to open registry file: %w", err).
			Category(errors.CategoryFileIO).
			Component(componentName).
			FileContext(path).
			Build()
	}
	defer func() { _ = f.Close() }()

	reg, err := LoadRegistry(f)
	if err != nil {
		return nil, errors.Newf("registry file %s: %w", path, err).
			Component(componentName).
			FileContext(path).
			Build()
	}
	return reg, nil
}
