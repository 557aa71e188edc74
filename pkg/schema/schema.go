package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Node struct {
	Label      string   `json:"label" yaml:"label"`
	Properties []string `json:"properties" yaml:"properties"`
}

type Relationship struct {
	Type string `json:"type" yaml:"type"`
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Schema describes the shape of the graph to callers. It is configuration
// and is never derived from the live database.
type Schema struct {
	Nodes []Node         `json:"nodes" yaml:"nodes"`
	Rels  []Relationship `json:"rels" yaml:"rels"`
}

// Default returns a fresh copy of the built-in schema.
func Default() *Schema {
	return &Schema{
		Nodes: []Node{
			{Label: "Vehicle", Properties: []string{"vin", "make", "model", "year", "trim", "bodyStyle"}},
			{Label: "Fact", Properties: []string{"odometer", "price", "msrp", "engineHP", "mpgCity", "mpgHwy"}},
			{Label: "Brand", Properties: []string{"name", "country"}},
			{Label: "Dealer", Properties: []string{"name", "region"}},
		},
		Rels: []Relationship{
			{Type: "HAS_FACT", From: "Vehicle", To: "Fact"},
			{Type: "MADE_BY", From: "Vehicle", To: "Brand"},
			{Type: "SOLD_BY", From: "Vehicle", To: "Dealer"},
		},
	}
}

// LoadFile reads a schema from a YAML or JSON file.
func LoadFile(path string) (*Schema, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read schema file: %w", err)
	}

	s, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("unable to load schema file %s: %w", path, err)
	}

	return s, nil
}

func Parse(content []byte) (*Schema, error) {
	var s Schema

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("unable to unmarshal schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Schema) Validate() error {
	if len(s.Nodes) == 0 {
		return errors.New("schema has no node labels")
	}

	labels := make(map[string]struct{}, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.Label == "" {
			return fmt.Errorf("node at index %d has no label", i)
		}
		if _, found := labels[n.Label]; found {
			return fmt.Errorf("duplicate node label: %s", n.Label)
		}
		labels[n.Label] = struct{}{}
	}

	for i, r := range s.Rels {
		if r.Type == "" {
			return fmt.Errorf("relationship at index %d has no type", i)
		}
		for _, label := range []string{r.From, r.To} {
			if _, found := labels[label]; !found {
				return fmt.Errorf("relationship %s references unknown label: %q", r.Type, label)
			}
		}
	}

	return nil
}

func (s *Schema) Labels() []string {
	labels := make([]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		labels = append(labels, n.Label)
	}
	return labels
}

func (s *Schema) Types() []string {
	types := make([]string, 0, len(s.Rels))
	for _, r := range s.Rels {
		types = append(types, r.Type)
	}
	return types
}
