package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const campaign = int64(4510461)

func at(s string) *time.Time {
	t, err := time.ParseInLocation(domain.BoundLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return &t
}

// TestCountWithoutBounds ensures no bounds are passed to the store when
// none are supplied.
func TestCountWithoutBounds(t *testing.T) {
	repo := mocks.NewMockClickRepository(t)
	repo.EXPECT().
		CountCampaignClicks(mock.Anything, campaign, domain.Bounds{}).
		Return(int64(6), nil)

	svc := NewClickUseCase(repo, time.UTC)

	got, err := svc.CountCampaignClicks(context.Background(), campaign, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)
}

// TestCountParsesBounds ensures both bounds are parsed in the configured
// location and forwarded.
func TestCountParsesBounds(t *testing.T) {
	repo := mocks.NewMockClickRepository(t)
	repo.EXPECT().
		CountCampaignClicks(mock.Anything, campaign, domain.Bounds{
			After:  at("2021-11-07 03:10:00"),
			Before: at("2021-11-07 03:20:00"),
		}).
		Return(int64(4), nil)

	svc := NewClickUseCase(repo, nil)

	got, err := svc.CountCampaignClicks(context.Background(), campaign, "2021-11-07 03:10:00", "2021-11-07 03:20:00")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestCountOnlyAfter(t *testing.T) {
	repo := mocks.NewMockClickRepository(t)
	repo.EXPECT().
		CountCampaignClicks(mock.Anything, campaign, mock.MatchedBy(func(b domain.Bounds) bool {
			return b.After != nil && b.Before == nil
		})).
		Return(int64(5), nil)

	got, err := NewClickUseCase(repo, time.UTC).CountCampaignClicks(context.Background(), campaign, "2021-11-07 03:10:00", "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestCountBoundsInLocation(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	repo := mocks.NewMockClickRepository(t)
	repo.EXPECT().
		CountCampaignClicks(mock.Anything, campaign, mock.MatchedBy(func(b domain.Bounds) bool {
			return b.Before != nil && b.Before.Equal(time.Date(2021, 11, 7, 2, 20, 0, 0, time.UTC))
		})).
		Return(int64(1), nil)

	_, err := NewClickUseCase(repo, loc).CountCampaignClicks(context.Background(), campaign, "", "2021-11-07 03:20:00")
	require.NoError(t, err)
}

// TestCountRejectsMalformedBounds ensures the store is never queried for
// input that does not parse.
func TestCountRejectsMalformedBounds(t *testing.T) {
	malformed := []string{
		"03:10:34 2022-12-07",
		"2022-13-07 03:10:34",
		"2022.12.07 03:10:34",
		"2022-12",
	}
	for _, in := range malformed {
		t.Run("after/"+in, func(t *testing.T) {
			repo := mocks.NewMockClickRepository(t)
			svc := NewClickUseCase(repo, time.UTC)

			got, err := svc.CountCampaignClicks(context.Background(), campaign, in, "")
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, got)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "after_date", ve.Field)
			assert.Equal(t, in, ve.Value)
		})
		t.Run("before/"+in, func(t *testing.T) {
			repo := mocks.NewMockClickRepository(t)
			svc := NewClickUseCase(repo, time.UTC)

			_, err := svc.CountCampaignClicks(context.Background(), campaign, "2021-11-07 03:10:00", in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "before_date", ve.Field)
		})
	}
}

func TestCountPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := mocks.NewMockClickRepository(t)
	repo.EXPECT().
		CountCampaignClicks(mock.Anything, campaign, domain.Bounds{}).
		Return(int64(0), storeErr)

	_, err := NewClickUseCase(repo, time.UTC).CountCampaignClicks(context.Background(), campaign, "", "")
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestRecordClickDefaultsToNow(t *testing.T) {
	repo := mocks.NewMockClickRepository(t)
	now := time.Date(2021, 11, 7, 3, 10, 34, 500, time.UTC)

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Run(func(ctx context.Context, click *domain.Click) {
			click.ID = 7
		}).
		Return(nil)

	svc := NewClickUseCase(repo, time.UTC)
	svc.now = func() time.Time { return now }

	click, err := svc.RecordClick(context.Background(), campaign, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), click.ID)
	assert.Equal(t, campaign, click.Campaign)
	assert.Equal(t, now.Truncate(time.Second), click.Timestamp)
}

func TestRecordClickStoreError(t *testing.T) {
	repo := mocks.NewMockClickRepository(t)
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Return(errors.New("boom"))

	click, err := NewClickUseCase(repo, time.UTC).RecordClick(context.Background(), campaign, *at("2021-11-07 03:10:00"))
	require.Error(t, err)
	assert.Nil(t, click)
}
