package shared

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"roomio/shared/cache"
	"roomio/shared/constant"
	"roomio/shared/dto"
	"roomio/shared/failure"

	"github.com/rs/zerolog/log"
)

// ParseID reads a positive numeric identifier from a path or query parameter.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	var builder strings.Builder

	builder.WriteString(prefix)

	for _, part := range parts {
		builder.WriteString(":")
		builder.WriteString(fmt.Sprint(part))
	}

	return builder.String()
}

const cacheKeyVersion = "version"

func versionKey(prefix string) string {
	return BuildCacheKey(cacheKeyVersion, strings.TrimSuffix(prefix, ":"))
}

// VersionedCacheKey builds a key under prefix stamped with the prefix's current generation.
// InvalidateCaches bumps the generation, so a value computed before a write and saved after it
// lands under a key no later read builds.
func VersionedCacheKey(ctx context.Context, redisCache cache.RedisCache, prefix string, parts ...any) (string, error) {
	var version int64

	err := redisCache.Get(ctx, versionKey(prefix), &version)
	if err != nil && !errors.Is(err, cache.Nil) {
		return "", fmt.Errorf("failed to read cache version: %w", err)
	}

	return BuildCacheKey(prefix+strconv.FormatInt(version, 10), parts...), nil
}

// InvalidateCaches bumps the generation of prefix and removes every key under it.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	key := versionKey(prefix)

	if _, err := redisCache.Incr(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to bump cache version")
	}

	pattern := prefix + constant.Asterix

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}
