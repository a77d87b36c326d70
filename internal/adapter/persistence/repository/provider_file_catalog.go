package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// providerIDNamespace scopes ids derived from provider names.
var providerIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("rawasi:providers"))

// providerDocument is one entry of a catalog JSON file. Scraped catalogs use
// city instead of location and null for missing links.
type providerDocument struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	BaseCost      float64  `json:"baseCost"`
	CostPerSqm    float64  `json:"costPerSqm"`
	TimelineSpeed float64  `json:"timelineSpeed"`
	Tech          []string `json:"tech"`
	PastProjects  int      `json:"pastProjects"`
	Photos        []string `json:"photos"`
	Logo          *string  `json:"logo"`
	URL           *string  `json:"url"`
	Website       *string  `json:"website"`
	Phone         *string  `json:"phone"`
}

// FileProviderCatalog serves the provider catalog from a JSON file loaded at
// startup. When no usable file is configured it serves the compiled-in demo
// providers and reports the fallback source.
type FileProviderCatalog struct {
	providers []entities.ProviderRecord
	source    string
}

var _ interfaces.IProviderCatalog = (*FileProviderCatalog)(nil)

func NewFileProviderCatalog(path string, log *zap.Logger) *FileProviderCatalog {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(path) == "" {
		log.Info("[catalog][file] no catalog file configured, serving demo providers")
		return NewFallbackProviderCatalog()
	}

	providers, err := LoadProviderFile(path)
	if err != nil {
		log.Warn("[catalog][file] could not load catalog, serving demo providers", zap.String("path", path), zap.Error(err))
		return NewFallbackProviderCatalog()
	}
	if len(providers) == 0 {
		log.Warn("[catalog][file] catalog file is empty, serving demo providers", zap.String("path", path))
		return NewFallbackProviderCatalog()
	}

	log.Info("[catalog][file] loaded", zap.String("path", path), zap.Int("providers", len(providers)))
	return &FileProviderCatalog{providers: providers, source: interfaces.CatalogSourceFile}
}

// NewFallbackProviderCatalog serves DemoProviders.
func NewFallbackProviderCatalog() *FileProviderCatalog {
	return &FileProviderCatalog{providers: DemoProviders(), source: interfaces.CatalogSourceFallback}
}

func (c *FileProviderCatalog) List(_ context.Context) ([]entities.ProviderRecord, error) {
	out := make([]entities.ProviderRecord, len(c.providers))
	copy(out, c.providers)
	return out, nil
}

func (c *FileProviderCatalog) Source() string {
	return c.source
}

// LoadProviderFile reads a catalog JSON array from path.
func LoadProviderFile(path string) ([]entities.ProviderRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseProviders(data)
}

// ParseProviders decodes a catalog JSON array. Entries without a name are
// skipped, later entries with an already seen name are dropped, and a missing
// id is derived from the name so it stays stable across imports.
func ParseProviders(data []byte) ([]entities.ProviderRecord, error) {
	var docs []providerDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(docs))
	out := make([]entities.ProviderRecord, 0, len(docs))
	for _, d := range docs {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, d.toRecord(name))
	}
	return out, nil
}

// ProviderIDFromName derives the id used for catalog entries that have none.
func ProviderIDFromName(name string) string {
	return "prv-" + uuid.NewSHA1(providerIDNamespace, []byte(name)).String()
}

func (d providerDocument) toRecord(name string) entities.ProviderRecord {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		id = ProviderIDFromName(name)
	}
	location := d.Location
	if location == "" {
		location = d.City
	}
	return entities.ProviderRecord{
		ID:            id,
		Name:          name,
		Location:      location,
		Rating:        d.Rating,
		Reviews:       d.Reviews,
		BaseCost:      d.BaseCost,
		CostPerSqm:    d.CostPerSqm,
		TimelineSpeed: d.TimelineSpeed,
		Tech:          d.Tech,
		PastProjects:  d.PastProjects,
		Photos:        d.Photos,
		Logo:          deref(d.Logo),
		URL:           deref(d.URL),
		Website:       deref(d.Website),
		Phone:         deref(d.Phone),
	}.Normalize()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DemoProviders returns the compiled-in demo catalog.
func DemoProviders() []entities.ProviderRecord {
	return []entities.ProviderRecord{
		{
			ID: "prv-neo", Name: "NeoBuild Technologies", Location: "Riyadh",
			Rating: 4.7, Reviews: 128, BaseCost: 1200000, CostPerSqm: 4500, TimelineSpeed: 0.9,
			Tech:         []string{"3D Printing", "Prefabrication", "AI QC"},
			PastProjects: 42,
			Photos:       []string{"https://images.unsplash.com/photo-1504307651254-35680f356dfd?q=80&w=1400&auto=format&fit=crop"},
		},
		{
			ID: "prv-sky", Name: "SkyRise Modular", Location: "Jeddah",
			Rating: 4.5, Reviews: 94, BaseCost: 900000, CostPerSqm: 3800, TimelineSpeed: 0.8,
			Tech:         []string{"Modular", "Prefabrication", "BIM"},
			PastProjects: 51,
			Photos:       []string{"https://images.unsplash.com/photo-1496307042754-b4aa456c4a2d?q=80&w=1400&auto=format&fit=crop"},
		},
		{
			ID: "prv-zen", Name: "Zenith Construct AI", Location: "Dammam",
			Rating: 4.8, Reviews: 201, BaseCost: 1500000, CostPerSqm: 5200, TimelineSpeed: 0.75,
			Tech:         []string{"AI Scheduling", "Robotics", "BIM"},
			PastProjects: 67,
			Photos:       []string{"https://images.unsplash.com/photo-1487956382158-bb926046304a?q=80&w=1400&auto=format&fit=crop"},
		},
		{
			ID: "prv-ora", Name: "Orion Smart Build", Location: "Mecca",
			Rating: 4.2, Reviews: 61, BaseCost: 700000, CostPerSqm: 3200, TimelineSpeed: 1.0,
			Tech:         []string{"Green Concrete", "BIM"},
			PastProjects: 23,
			Photos:       []string{"https://images.unsplash.com/photo-1503387762-592deb58ef4e?q=80&w=1400&auto=format&fit=crop"},
		},
	}
}
