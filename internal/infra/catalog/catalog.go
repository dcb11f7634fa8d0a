package catalog

import (
	_ "embed"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/domain/value"
	"gopkg.in/yaml.v3"
)

//go:embed components.yaml
var componentsYAML []byte

type component struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Category     string         `yaml:"category"`
	Icon         string         `yaml:"icon"`
	Description  string         `yaml:"description"`
	DefaultProps map[string]any `yaml:"defaultProps"`
}

// Catalog is the fixed list of editor components, in display order.
type Catalog struct {
	components []entity.Component
}

var _ interfaces.ComponentCatalog = (*Catalog)(nil)

func New() (*Catalog, error) {
	return Parse(componentsYAML)
}

func Parse(doc []byte) (*Catalog, error) {
	var raw []component
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("err parsing component catalog, %v", err)
	}

	components := make([]entity.Component, 0, len(raw))
	for _, c := range raw {
		props, err := value.FromAny(map[string]any(c.DefaultProps))
		if err != nil {
			return nil, fmt.Errorf("err reading props of component %s, %v", c.ID, err)
		}
		obj, _ := props.AsObject()
		if obj == nil {
			obj = value.Object{}
		}
		components = append(components, entity.Component{
			ID:           c.ID,
			Name:         c.Name,
			Category:     c.Category,
			Icon:         c.Icon,
			Description:  c.Description,
			DefaultProps: obj,
		})
	}
	return &Catalog{components: components}, nil
}

// Components returns a copy so callers can't reorder the catalog.
func (c *Catalog) Components() []entity.Component {
	out := make([]entity.Component, len(c.components))
	copy(out, c.components)
	return out
}
