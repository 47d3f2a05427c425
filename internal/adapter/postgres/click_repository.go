package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port"
)

// ClickRepository implements port.ClickRepository using pgxpool for
// PostgreSQL. Counts are served by the (campaign, timestamp) index.
type ClickRepository struct {
	pool *pgxpool.Pool
}

var _ port.ClickRepository = (*ClickRepository)(nil)

// NewClickRepository returns a new repository instance.
func NewClickRepository(pool *pgxpool.Pool) *ClickRepository {
	return &ClickRepository{pool: pool}
}

// CountCampaignClicks counts clicks of campaign strictly inside bounds.
func (r *ClickRepository) CountCampaignClicks(ctx context.Context, campaign int64, bounds domain.Bounds) (int64, error) {
	query, args := countQuery(campaign, bounds)
	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count campaign clicks: %w", err)
	}
	return n, nil
}

// countQuery builds the count statement. Absent bounds are left out of
// the WHERE clause entirely.
func countQuery(campaign int64, bounds domain.Bounds) (string, []any) {
	var (
		where = []string{"campaign = $1"}
		args  = []any{campaign}
	)
	if bounds.After != nil {
		args = append(args, *bounds.After)
		where = append(where, fmt.Sprintf(`"timestamp" > $%d`, len(args)))
	}
	if bounds.Before != nil {
		args = append(args, *bounds.Before)
		where = append(where, fmt.Sprintf(`"timestamp" < $%d`, len(args)))
	}
	return `SELECT count(*) FROM clicks WHERE ` + strings.Join(where, " AND "), args
}

// Create inserts click and sets its ID.
func (r *ClickRepository) Create(ctx context.Context, click *domain.Click) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clicks (campaign, "timestamp") VALUES ($1, $2) RETURNING id`,
		click.Campaign, click.Timestamp,
	).Scan(&click.ID)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// GetOrCreate looks the (campaign, timestamp) pair up and inserts it
// when missing. Both steps share a transaction, but nothing stops two
// concurrent importers from inserting the same pair.
func (r *ClickRepository) GetOrCreate(ctx context.Context, click *domain.Click) (created bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx,
		`SELECT id FROM clicks WHERE campaign = $1 AND "timestamp" = $2 ORDER BY id LIMIT 1`,
		click.Campaign, click.Timestamp,
	).Scan(&click.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("find click: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO clicks (campaign, "timestamp") VALUES ($1, $2) RETURNING id`,
		click.Campaign, click.Timestamp,
	).Scan(&click.ID)
	if err != nil {
		return false, fmt.Errorf("insert click: %w", err)
	}
	return true, nil
}
