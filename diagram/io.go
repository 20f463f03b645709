package diagram

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a diagram from a JSON file and validates it.
func LoadFile(filename string) (*Diagram, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid diagram %s: %w", filename, err)
	}
	return &d, nil
}

// SaveFile writes the diagram to a JSON file.
func SaveFile(filename string, d *Diagram) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
