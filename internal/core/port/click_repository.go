package port

//go:generate mockery --name=ClickRepository --output=./mocks --outpkg=mocks --with-expecter

import (
	"context"

	"click-logs/internal/core/domain"
)

// ClickRepository is the outbound port to the click store. It must
// support equality on campaign, range filtering on timestamp and
// counting. Implementations must be safe for concurrent use.
type ClickRepository interface {
	// CountCampaignClicks returns the number of clicks for campaign that
	// fall strictly inside bounds.
	CountCampaignClicks(ctx context.Context, campaign int64, bounds domain.Bounds) (int64, error)
	// Create stores a new click unconditionally and fills in its ID.
	Create(ctx context.Context, click *domain.Click) error
	// GetOrCreate stores click unless a click with the same campaign and
	// timestamp already exists. It reports whether a row was inserted.
	// The check and insert are not guarded against concurrent callers.
	GetOrCreate(ctx context.Context, click *domain.Click) (bool, error)
}
