package igdb

import (
	"context"

	"gamelib/internal/catalog"
)

// platformListLimit covers the full upstream platform table in one call.
const platformListLimit = 500

// PlatformProvider implements catalog.PlatformProvider against the IGDB
// platforms endpoint.
type PlatformProvider struct {
	client *Client
}

func NewPlatformProvider(client *Client) *PlatformProvider {
	return &PlatformProvider{client: client}
}

func (p *PlatformProvider) List(ctx context.Context) ([]catalog.Platform, error) {
	query := NewQuery(platformFields).Limit(platformListLimit).Sort("name asc")

	var records []platformRecord
	if err := p.client.Do(ctx, "platforms", query.String(), &records); err != nil {
		return nil, err
	}

	platforms := make([]catalog.Platform, len(records))
	for i, rec := range records {
		category := 0
		if rec.Category != nil {
			category = *rec.Category
		}
		platforms[i] = catalog.Platform{
			ID:         rec.ID,
			Name:       rec.Name,
			Generation: rec.Generation,
			Type:       catalog.PlatformTypeFromCode(category),
		}
	}
	return platforms, nil
}
