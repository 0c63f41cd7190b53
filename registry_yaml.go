package kontonummer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRegistry decodes a YAML list of bank rules and validates it.
//
//	- name: Avanza Bank
//	  clearing: ["9550-9569"]
//	  algorithm: mod11
//	  lengths: {clearing: 4, account: 7, control: 11}
//	- name: Swedbank
//	  clearing: ["80000-89999"]
//	  algorithm: mod10
//	  lengths: {clearing: 5, account: 10, control: 10}
//	  zerofill: true
//	  warn_on_bad_checksum: true
//
// Unknown fields are rejected.
func LoadRegistry(r io.Reader) (Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var reg Registry
	if err := dec.Decode(&reg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRegistry)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadRegistryFile reads a registry from a YAML file. See LoadRegistry.
func LoadRegistryFile(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry file: %w", err)
	}
	defer f.Close()

	reg, err := LoadRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("load registry file %s: %w", path, err)
	}
	return reg, nil
}

// WriteYAML encodes the registry in the format read by LoadRegistry.
func (r Registry) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode([]Bank(r)); err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return enc.Close()
}
