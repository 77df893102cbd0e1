// External type config: maps a type_id to the category hints the
// keyset builder routes on. This is a standalone interface so a caller
// can supply the type config however its import pipeline already
// produces one, with JSON provided here as a concrete implementation.
package textindex

import (
	"os"

	json "github.com/goccy/go-json"
)

// TypeConfig answers the two questions the keyset builder needs about a
// record's type_id: whether it is ignored entirely, and (if not) which
// category it belongs to.
type TypeConfig interface {
	// Ignored reports whether records of this type are skipped entirely.
	Ignored(typeID uint16) bool

	// Category reports the category a type routes to, and false if the
	// type is unknown to the config (treated as ignored by callers).
	Category(typeID uint16) (Category, bool)
}

// typeFlags mirrors one entry of the external type config: the raw
// ignored/poi/location/region flags before precedence resolution.
type typeFlags struct {
	ID       uint16 `json:"id"`
	Ignored  bool   `json:"ignored"`
	POI      bool   `json:"poi"`
	Location bool   `json:"location"`
	Region   bool   `json:"region"`
}

// typeConfigFile is the on-disk JSON shape: {"types":[{"id":7,"poi":true}]}.
type typeConfigFile struct {
	Types []typeFlags `json:"types"`
}

// JSONTypeConfig is a TypeConfig loaded from a JSON file. Precedence
// (POI > Location > Region > Other) is resolved once per type id at
// load time rather than per query.
type JSONTypeConfig struct {
	ignored    map[uint16]bool
	categories map[uint16]Category
}

// LoadTypeConfig reads and resolves a JSON type config file.
func LoadTypeConfig(path string) (*JSONTypeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file typeConfigFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return NewTypeConfig(file.Types), nil
}

// NewTypeConfig builds a JSONTypeConfig from already-parsed flag entries;
// LoadTypeConfig is a thin JSON-decoding wrapper around this.
func NewTypeConfig(entries []typeFlags) *JSONTypeConfig {
	cfg := &JSONTypeConfig{
		ignored:    make(map[uint16]bool, len(entries)),
		categories: make(map[uint16]Category, len(entries)),
	}

	for _, e := range entries {
		if e.Ignored {
			cfg.ignored[e.ID] = true
			continue
		}
		switch {
		case e.POI:
			cfg.categories[e.ID] = CategoryPOI
		case e.Location:
			cfg.categories[e.ID] = CategoryLocation
		case e.Region:
			cfg.categories[e.ID] = CategoryRegion
		default:
			cfg.categories[e.ID] = CategoryOther
		}
	}

	return cfg
}

// Ignored reports whether typeID is flagged ignored.
func (c *JSONTypeConfig) Ignored(typeID uint16) bool {
	return c.ignored[typeID]
}

// Category reports the resolved category for typeID.
func (c *JSONTypeConfig) Category(typeID uint16) (Category, bool) {
	cat, ok := c.categories[typeID]
	return cat, ok
}
