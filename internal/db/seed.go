package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoCampaign is the campaign id used by Seed.
const DemoCampaign = 4510461

// Seed inserts a small fixed set of demo clicks for DemoCampaign. Rows
// already present are left alone, so Seed may run on every start.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	day := time.Date(2021, 11, 7, 0, 0, 0, 0, time.UTC)
	offsets := []time.Duration{
		2*time.Hour + 10*time.Minute,
		3*time.Hour + 10*time.Minute + 34*time.Second,
		3*time.Hour + 13*time.Minute + 3*time.Second,
		3*time.Hour + 18*time.Minute + 51*time.Second,
		3*time.Hour + 19*time.Minute + 53*time.Second,
		3*time.Hour + 50*time.Minute + 34*time.Second,
	}
	for _, off := range offsets {
		_, err := db.Exec(ctx, `INSERT INTO clicks (campaign, "timestamp")
SELECT $1::bigint, $2::timestamptz WHERE NOT EXISTS (SELECT 1 FROM clicks WHERE campaign = $1 AND "timestamp" = $2)`,
			DemoCampaign, day.Add(off))
		if err != nil {
			return err
		}
	}
	return nil
}
