package cache_test

import (
	"context"
	"errors"
	"testing"

	"roomio/infras/otel/mocks"
	"roomio/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_NilClientAlwaysMisses(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "listing:rooms", []int{1, 2}, 60))

	var value []int
	err := c.Get(ctx, "listing:rooms", &value)
	assert.True(t, errors.Is(err, cache.Nil))
	assert.Nil(t, value)

	version, err := c.Incr(ctx, "version:listing")
	assert.NoError(t, err)
	assert.Zero(t, version)

	assert.NoError(t, c.Clear(ctx, "listing:*"))
}
