package igdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelib/internal/catalog"
)

func TestPlatformProvider_List(t *testing.T) {
	stub := &upstreamStub{body: `[
		{"id": 6, "name": "PC (Microsoft Windows)", "generation": null, "category": 4},
		{"id": 48, "name": "PlayStation 4", "generation": 8, "category": 1},
		{"id": 52, "name": "Arcade", "category": 2},
		{"id": 99, "name": "Mystery Box", "category": 9},
		{"id": 100, "name": "No Category"}
	]`}
	client, _, _ := newTestClient(t, stub.handler())
	provider := NewPlatformProvider(client)

	platforms, err := provider.List(context.Background())
	require.NoError(t, err)
	require.Len(t, platforms, 5)

	assert.Equal(t, catalog.PlatformOperatingSystem, platforms[0].Type)
	assert.Nil(t, platforms[0].Generation)

	assert.Equal(t, catalog.PlatformConsole, platforms[1].Type)
	require.NotNil(t, platforms[1].Generation)
	assert.Equal(t, 8, *platforms[1].Generation)

	assert.Equal(t, catalog.PlatformArcade, platforms[2].Type)

	// Codes outside the known range and absent categories both map to
	// UNKNOWN rather than failing the listing.
	assert.Equal(t, catalog.PlatformUnknown, platforms[3].Type)
	assert.Equal(t, catalog.PlatformUnknown, platforms[4].Type)

	require.Len(t, stub.queries, 1)
	assert.Equal(t, platformFields+" limit 500; sort name asc;", stub.queries[0])
}
