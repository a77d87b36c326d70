package interfaces

import (
	"context"

	"rawasi_matching/internal/domain/entities"
)

//go:generate mockgen -source=provider_catalog_interface.go -destination=mocks/provider_catalog_interface_mock.go -package=mock_interfaces

// Catalog sources reported to clients.
const (
	CatalogSourceFile     = "file"
	CatalogSourceFallback = "fallback"
	CatalogSourcePostgres = "postgres"
)

// IProviderCatalog is the read-only list of providers to rank.
//
// List returns providers in catalog order, de-duplicated by name. Source
// tells which backing store produced the last List.
type IProviderCatalog interface {
	List(ctx context.Context) ([]entities.ProviderRecord, error)
	Source() string
}
