// Package project persists estimates and the contractor profile as JSON
// files. The HTTP server uses the sqlite store instead; these files are the
// CLI's native format and the import/export interchange format.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renoworks/renoquote/internal/model"
)

// Save writes a project to the given path, creating parent directories.
func Save(path string, p *model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given path.
func Load(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project file: %w", err)
	}
	if p.ID == "" {
		return nil, errors.New("project file has no id")
	}
	if p.Items == nil {
		p.Items = map[model.Workflow]*model.ItemSet{}
	}
	return &p, nil
}
