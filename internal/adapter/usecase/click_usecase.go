package usecase

import (
	"context"
	"time"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port"
)

// ClickUseCase provides the click counting and recording logic on top
// of a port.ClickRepository.
type ClickUseCase struct {
	repo port.ClickRepository

	// loc is the zone in which after_date and before_date are read.
	loc *time.Location
	now func() time.Time
}

// NewClickUseCase creates a usecase reading bounds in loc. A nil loc
// means UTC.
func NewClickUseCase(repo port.ClickRepository, loc *time.Location) *ClickUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ClickUseCase{repo: repo, loc: loc, now: time.Now}
}

// CountCampaignClicks validates the optional bounds and returns the
// number of clicks of campaign strictly between them. Both bounds are
// exclusive, so equal bounds always count zero.
func (u *ClickUseCase) CountCampaignClicks(ctx context.Context, campaign int64, afterDate, beforeDate string) (int64, error) {
	var bounds domain.Bounds
	if afterDate != "" {
		t, err := domain.ParseBound(afterDate, u.loc)
		if err != nil {
			return 0, &domain.ValidationError{Field: "after_date", Value: afterDate, Err: err}
		}
		bounds.After = &t
	}
	if beforeDate != "" {
		t, err := domain.ParseBound(beforeDate, u.loc)
		if err != nil {
			return 0, &domain.ValidationError{Field: "before_date", Value: beforeDate, Err: err}
		}
		bounds.Before = &t
	}
	return u.repo.CountCampaignClicks(ctx, campaign, bounds)
}

// RecordClick stores a new click. A zero ts is replaced by the current
// time truncated to the second, the resolution of the bound format.
func (u *ClickUseCase) RecordClick(ctx context.Context, campaign int64, ts time.Time) (*domain.Click, error) {
	if ts.IsZero() {
		ts = u.now().Truncate(time.Second)
	}
	click := &domain.Click{Campaign: campaign, Timestamp: ts}
	if err := u.repo.Create(ctx, click); err != nil {
		return nil, err
	}
	return click, nil
}

// Location returns the zone used to read bound strings.
func (u *ClickUseCase) Location() *time.Location {
	return u.loc
}
