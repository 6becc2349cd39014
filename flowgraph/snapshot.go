package flowgraph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is the loadable entity collection a graph is built from. A
// built graph never changes: load a new snapshot, build a new graph, and
// swap the reference.
type Snapshot struct {
	Departments   []Department   `yaml:"departments" json:"departments"`
	Employees     []Employee     `yaml:"employees" json:"employees"`
	Documents     []Document     `yaml:"documents" json:"documents"`
	DocumentTypes []DocumentType `yaml:"document_types" json:"document_types"`
}

// LoadSnapshot reads an entity snapshot from a YAML file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entity snapshot: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse entity snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// Build constructs the graph for this snapshot.
func (s *Snapshot) Build(opts ...BuildOption) *Graph {
	return Build(s.Departments, s.Employees, s.Documents, s.DocumentTypes, opts...)
}
