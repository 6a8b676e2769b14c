package item

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is the read-only subset of the host item template database the
// assemblers consult.
type Template struct {
	ID               string `yaml:"id" json:"id"`
	Name             string `yaml:"name" json:"name"`
	Caliber          string `yaml:"caliber,omitempty" json:"caliber,omitempty"`
	MagazineCapacity int    `yaml:"magazine_capacity,omitempty" json:"magazine_capacity,omitempty"`
	StackMaxSize     int    `yaml:"stack_max_size,omitempty" json:"stack_max_size,omitempty"`
	MaxDurability    int    `yaml:"max_durability,omitempty" json:"max_durability,omitempty"`
}

type Catalog interface {
	Template(tpl string) (Template, bool)
}

// MemoryCatalog is a map backed catalog.
type MemoryCatalog struct {
	templates map[string]Template
}

func NewCatalog(templates ...Template) *MemoryCatalog {
	c := &MemoryCatalog{templates: make(map[string]Template, len(templates))}
	for _, t := range templates {
		c.templates[t.ID] = t
	}
	return c
}

func (c *MemoryCatalog) Template(tpl string) (Template, bool) {
	t, ok := c.templates[tpl]
	return t, ok
}

func (c *MemoryCatalog) Len() int {
	return len(c.templates)
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// LoadCatalog reads a catalog export:
//
//	templates:
//	  - id: 5447a9cd4bdc2dbd208b4567
//	    name: Colt M4A1
//	    caliber: Caliber556x45NATO
func LoadCatalog(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	for i, t := range file.Templates {
		if t.ID == "" {
			return nil, fmt.Errorf("loading catalog: template %d id is required", i)
		}
	}
	return NewCatalog(file.Templates...), nil
}
