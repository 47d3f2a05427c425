package port

//go:generate mockery --name=ClickUseCase --output=./mocks --outpkg=mocks --with-expecter

import (
	"context"
	"time"

	"click-logs/internal/core/domain"
)

// ClickUseCase defines the click operations exposed to inbound adapters.
type ClickUseCase interface {
	// CountCampaignClicks counts the clicks of campaign strictly after
	// afterDate and strictly before beforeDate. Empty strings leave the
	// corresponding side open. Malformed bounds yield an error matching
	// domain.ErrValidation; an unknown campaign yields 0.
	CountCampaignClicks(ctx context.Context, campaign int64, afterDate, beforeDate string) (int64, error)

	// RecordClick stores a click for campaign at ts. A zero ts means now.
	RecordClick(ctx context.Context, campaign int64, ts time.Time) (*domain.Click, error)

	// Location is the zone in which bound strings are interpreted.
	Location() *time.Location
}
