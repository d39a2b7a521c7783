package player

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed classes.yaml
var defaultClassesYAML []byte

// Class is the display pair for one character class.
type Class struct {
	Name string
	Icon string
}

// yamlCatalogFile is the top-level YAML structure for catalog documents.
type yamlCatalogFile struct {
	Classes []yamlClass `yaml:"classes"`
	Unknown yamlClass   `yaml:"unknown"`
}

// yamlClass is the YAML representation of one class entry.
type yamlClass struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// Catalog maps class ids to display names and icons. It is immutable after
// construction; ids outside the catalog resolve to the unknown fallback.
type Catalog struct {
	classes map[int]Class
	unknown Class
}

// NewCatalogFromBytes parses and validates a class catalog from YAML bytes.
// Servers with custom class tables can load their own document; the schema
// matches the embedded default.
//
// Precondition: data must be valid YAML conforming to the catalog schema.
// Postcondition: Returns a validated Catalog or a non-nil error.
func NewCatalogFromBytes(data []byte) (*Catalog, error) {
	var file yamlCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing class catalog YAML: %w", err)
	}

	if file.Unknown.Name == "" || file.Unknown.Icon == "" {
		return nil, fmt.Errorf("class catalog missing unknown fallback name or icon")
	}

	catalog := &Catalog{
		classes: make(map[int]Class, len(file.Classes)),
		unknown: Class{Name: file.Unknown.Name, Icon: file.Unknown.Icon},
	}
	for _, yc := range file.Classes {
		if yc.Name == "" || yc.Icon == "" {
			return nil, fmt.Errorf("class %d missing name or icon", yc.ID)
		}
		if _, exists := catalog.classes[yc.ID]; exists {
			return nil, fmt.Errorf("duplicate class id %d", yc.ID)
		}
		catalog.classes[yc.ID] = Class{Name: yc.Name, Icon: yc.Icon}
	}

	return catalog, nil
}

// Lookup returns the display pair for id, falling back to the unknown class
// for ids outside the catalog.
func (c *Catalog) Lookup(id int) Class {
	if class, ok := c.classes[id]; ok {
		return class
	}
	return c.unknown
}

// Name returns the display name for id.
func (c *Catalog) Name(id int) string {
	return c.Lookup(id).Name
}

// Icon returns the display icon for id.
func (c *Catalog) Icon(id int) string {
	return c.Lookup(id).Icon
}

// Display returns the combined "icon name" string used in table rows.
func (c *Catalog) Display(id int) string {
	class := c.Lookup(id)
	return fmt.Sprintf("%s %s", class.Icon, class.Name)
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog returns the catalog embedded in the binary, decoding it on
// first use. The embedded document is validated at build review time, so a
// decode failure is a programming error.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		catalog, err := NewCatalogFromBytes(defaultClassesYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded class catalog: %v", err))
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}
