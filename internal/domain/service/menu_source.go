package service

import (
	"context"

	"mealbell/internal/domain/entity"
)

// MenuSource defines the interface for the daily-menu data provider.
type MenuSource interface {
	// FetchMenu returns the raw dish payload for the given date (yyyyMMdd)
	// and meal slot. A day without that meal returns an empty string, not
	// an error.
	FetchMenu(ctx context.Context, date string, slot entity.MealSlot) (string, error)

	// FetchMenus returns the raw dish payloads for every meal slot served
	// on the given date.
	FetchMenus(ctx context.Context, date string) (map[entity.MealSlot]string, error)
}
