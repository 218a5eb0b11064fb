package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admin/internal/application/schedule"
	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/pkg/resource"
)

type nopWarmer struct{}

func (nopWarmer) Warm(context.Context, int) error { return nil }

func TestReferenceKeys(t *testing.T) {
	t.Cleanup(func() { resource.Load(map[string]any{}) })

	resource.Load(map[string]any{"app.reference-warmup.resources": " categories, units ,,warehouses"})
	keys, err := referenceKeys()
	require.NoError(t, err)
	assert.Equal(t, []cachekey.Key{cachekey.Categories, cachekey.Units, cachekey.Warehouses}, keys)

	all := map[string]schedule.Warmer{"categories": nopWarmer{}, "units": nopWarmer{}, "patients": nopWarmer{}}
	warmers := referenceWarmers(all, keys)
	assert.Len(t, warmers, 2)
	assert.Contains(t, warmers, "units")
	assert.NotContains(t, warmers, "patients")

	resource.Load(map[string]any{"app.reference-warmup.resources": "categories,unitz"})
	_, err = referenceKeys()
	assert.ErrorContains(t, err, `unknown cache key "unitz"`)
}
