package route

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Flyrell/transithours/internal/hashutil"
	"github.com/Flyrell/transithours/internal/stringutil"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the catalog file looked up when none is given.
const DefaultPath = "routes.yml"

// ErrNotFound is returned when a route name is not in the catalog.
var ErrNotFound = errors.New("route not found")

// Route is a single transit route and its OSM tags.
type Route struct {
	Name string            `yaml:"name" validate:"required"`
	ID   string            `yaml:"id,omitempty" validate:"omitempty,max=64"`
	Tags map[string]string `yaml:"tags,omitempty"`
	Slug string            `yaml:"-"`
}

// Catalog holds every route of a catalog file.
type Catalog struct {
	Routes []Route `yaml:"routes" validate:"unique=Name,dive"`
}

var validate = validator.New()

// Load reads and validates a catalog file. Routes without an ID get one
// derived from their name.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("route catalog %s does not exist", path)
	}
	if err != nil {
		return nil, err
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("route catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	for i := range cat.Routes {
		cat.Routes[i].Name = strings.TrimSpace(cat.Routes[i].Name)
	}
	if err := validate.Struct(cat); err != nil {
		return nil, err
	}

	for i := range cat.Routes {
		r := &cat.Routes[i]
		if r.ID == "" {
			r.ID = hashutil.RouteID(r.Name)
		}
		r.Slug = stringutil.Slugify(r.Name)
		if r.Tags == nil {
			r.Tags = map[string]string{}
		}
	}
	return &cat, nil
}

// Find looks up a route by name or ID.
func (c *Catalog) Find(nameOrID string) (*Route, error) {
	for i := range c.Routes {
		if c.Routes[i].Name == nameOrID || c.Routes[i].ID == nameOrID {
			return &c.Routes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, nameOrID)
}
