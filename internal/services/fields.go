package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"opsboard/internal/revalidate"
)

// invalidate marks routes stale after a committed mutation. An invalidation
// failure never fails the mutation; it is logged and the page catches up on a
// later version bump.
func invalidate(ctx context.Context, rev revalidate.Invalidator, log *logrus.Logger, paths ...string) {
	for _, path := range paths {
		if err := rev.Invalidate(ctx, path); err != nil {
			log.WithError(err).WithField("path", path).Warn("route revalidation failed")
		}
	}
}

// nullable maps a blank form field to nil so the store keeps the column NULL
// instead of an empty string.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// nullableValue is the map-update counterpart of nullable: Updates needs an
// untyped nil to write NULL.
func nullableValue(s string) interface{} {
	if p := nullable(s); p != nil {
		return *p
	}
	return nil
}
