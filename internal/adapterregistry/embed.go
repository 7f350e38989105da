package adapterregistry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed registry.json
var registryData []byte

// Catalog is the embedded built-in adapter catalog.
type Catalog struct {
	SchemaVersion string           `json:"schema_version"`
	Adapters      map[string]Entry `json:"adapters"`
}

var (
	embeddedCatalog     *Catalog
	embeddedCatalogOnce sync.Once
	errEmbeddedCatalog  error
)

// GetEmbeddedCatalog returns the parsed embedded adapter catalog, parsing
// it once on first call.
func GetEmbeddedCatalog() (*Catalog, error) {
	embeddedCatalogOnce.Do(func() {
		embeddedCatalog = &Catalog{}
		if err := json.Unmarshal(registryData, embeddedCatalog); err != nil {
			errEmbeddedCatalog = fmt.Errorf("failed to parse embedded adapter catalog: %w", err)
			return
		}
		for _, entry := range embeddedCatalog.Adapters {
			if err := ValidateEntry(entry); err != nil {
				errEmbeddedCatalog = fmt.Errorf("invalid embedded adapter catalog: %w", err)
				return
			}
		}
	})
	return embeddedCatalog, errEmbeddedCatalog
}

// GetEntry looks up name in the embedded catalog.
func GetEntry(name string) (*Entry, error) {
	cat, err := GetEmbeddedCatalog()
	if err != nil {
		return nil, err
	}
	entry, ok := cat.Adapters[name]
	if !ok {
		return nil, fmt.Errorf("adapter %q not found in registry", name)
	}
	return &entry, nil
}

// ListNames returns every adapter name in the embedded catalog.
func ListNames() ([]string, error) {
	cat, err := GetEmbeddedCatalog()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cat.Adapters))
	for name := range cat.Adapters {
		names = append(names, name)
	}
	return names, nil
}
