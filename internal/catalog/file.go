package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region file

type catalogFile struct {
	Entries []Entry `yaml:"entries"`
}

// LoadFile reads a catalog override from a YAML file.
// Entries missing an id, topic, or prompt are rejected; duplicate ids
// within the file are rejected (merging with other sources dedups later).
func LoadFile(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Entries))
	for i, e := range f.Entries {
		if e.ID == "" || e.Topic == "" || e.Prompt == "" {
			return nil, fmt.Errorf("catalog entry %d: id, topic, and prompt are required", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	return f.Entries, nil
}

// #endregion file
