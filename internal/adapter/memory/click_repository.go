package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port"
)

// ClickRepository is an in-memory port.ClickRepository. Each campaign
// keeps its timestamps sorted, so a bounded count is two binary
// searches.
type ClickRepository struct {
	mu     sync.RWMutex
	byCamp map[int64][]time.Time
	nextID int64
}

var _ port.ClickRepository = (*ClickRepository)(nil)

// NewClickRepository returns an empty repository.
func NewClickRepository() *ClickRepository {
	return &ClickRepository{byCamp: make(map[int64][]time.Time)}
}

// CountCampaignClicks counts timestamps strictly inside bounds.
func (r *ClickRepository) CountCampaignClicks(_ context.Context, campaign int64, bounds domain.Bounds) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ts := r.byCamp[campaign]
	lo, hi := 0, len(ts)
	if bounds.After != nil {
		after := *bounds.After
		lo = sort.Search(len(ts), func(i int) bool { return ts[i].After(after) })
	}
	if bounds.Before != nil {
		before := *bounds.Before
		hi = sort.Search(len(ts), func(i int) bool { return !ts[i].Before(before) })
	}
	if hi <= lo {
		return 0, nil
	}
	return int64(hi - lo), nil
}

// Create stores click.
func (r *ClickRepository) Create(_ context.Context, click *domain.Click) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insert(click)
	return nil
}

// GetOrCreate stores click unless its (campaign, timestamp) pair exists.
// The returned click ID is only meaningful for inserted rows.
func (r *ClickRepository) GetOrCreate(_ context.Context, click *domain.Click) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.byCamp[click.Campaign]
	i := sort.Search(len(ts), func(i int) bool { return !ts[i].Before(click.Timestamp) })
	if i < len(ts) && ts[i].Equal(click.Timestamp) {
		return false, nil
	}
	r.insert(click)
	return true, nil
}

func (r *ClickRepository) insert(click *domain.Click) {
	r.nextID++
	click.ID = r.nextID

	ts := r.byCamp[click.Campaign]
	// after any equal timestamps, keeping insertion order stable
	i := sort.Search(len(ts), func(i int) bool { return ts[i].After(click.Timestamp) })
	ts = append(ts, time.Time{})
	copy(ts[i+1:], ts[i:])
	ts[i] = click.Timestamp
	r.byCamp[click.Campaign] = ts
}
