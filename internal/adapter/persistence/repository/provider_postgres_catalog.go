package repository

import (
	"context"
	"fmt"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProviderPostgresCatalog reads the provider catalog from the providers
// table. Rows come back in insertion order so ranking ties stay stable.
//
//	CREATE TABLE providers (
//	    seq             BIGSERIAL,
//	    id              TEXT PRIMARY KEY,
//	    name            TEXT NOT NULL UNIQUE,
//	    location        TEXT NOT NULL DEFAULT '',
//	    rating          DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    reviews         INTEGER NOT NULL DEFAULT 0,
//	    base_cost       DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    cost_per_sqm    DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    timeline_speed  DOUBLE PRECISION NOT NULL DEFAULT 1,
//	    tech            TEXT[] NOT NULL DEFAULT '{}',
//	    past_projects   INTEGER NOT NULL DEFAULT 0,
//	    photos          TEXT[] NOT NULL DEFAULT '{}',
//	    logo            TEXT NOT NULL DEFAULT '',
//	    url             TEXT NOT NULL DEFAULT '',
//	    website         TEXT NOT NULL DEFAULT '',
//	    phone           TEXT NOT NULL DEFAULT ''
//	);
type ProviderPostgresCatalog struct {
	pool *pgxpool.Pool
}

var _ interfaces.IProviderCatalog = (*ProviderPostgresCatalog)(nil)

func NewProviderPostgresCatalog(pool *pgxpool.Pool) *ProviderPostgresCatalog {
	return &ProviderPostgresCatalog{pool: pool}
}

const listProvidersSQL = `
SELECT id, name, location, rating, reviews, base_cost, cost_per_sqm, timeline_speed,
       tech, past_projects, photos, logo, url, website, phone
FROM providers
ORDER BY seq`

const upsertProviderSQL = `
INSERT INTO providers (id, name, location, rating, reviews, base_cost, cost_per_sqm, timeline_speed,
                       tech, past_projects, photos, logo, url, website, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    location = EXCLUDED.location,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    base_cost = EXCLUDED.base_cost,
    cost_per_sqm = EXCLUDED.cost_per_sqm,
    timeline_speed = EXCLUDED.timeline_speed,
    tech = EXCLUDED.tech,
    past_projects = EXCLUDED.past_projects,
    photos = EXCLUDED.photos,
    logo = EXCLUDED.logo,
    url = EXCLUDED.url,
    website = EXCLUDED.website,
    phone = EXCLUDED.phone`

func (c *ProviderPostgresCatalog) List(ctx context.Context) ([]entities.ProviderRecord, error) {
	rows, err := c.pool.Query(ctx, listProvidersSQL)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	out := make([]entities.ProviderRecord, 0)
	for rows.Next() {
		var p entities.ProviderRecord
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Location, &p.Rating, &p.Reviews, &p.BaseCost, &p.CostPerSqm, &p.TimelineSpeed,
			&p.Tech, &p.PastProjects, &p.Photos, &p.Logo, &p.URL, &p.Website, &p.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return out, nil
}

func (c *ProviderPostgresCatalog) Source() string {
	return interfaces.CatalogSourcePostgres
}

// Upsert writes providers in one transaction and returns how many rows were
// written.
func (c *ProviderPostgresCatalog) Upsert(ctx context.Context, providers []entities.ProviderRecord) (int, error) {
	batch := &pgx.Batch{}
	for _, p := range providers {
		p = p.Normalize()
		batch.Queue(upsertProviderSQL,
			p.ID, p.Name, p.Location, p.Rating, p.Reviews, p.BaseCost, p.CostPerSqm, p.TimelineSpeed,
			p.Tech, p.PastProjects, p.Photos, p.Logo, p.URL, p.Website, p.Phone,
		)
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	results := tx.SendBatch(ctx, batch)
	for i := range providers {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("upsert provider %q: %w", providers[i].Name, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("upsert providers: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(providers), nil
}
