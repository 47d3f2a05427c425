// Package importer loads historical clicks from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

var requiredColumns = []string{"id", "campaign", "timestamp"}

// Stats summarises an import run.
type Stats struct {
	Rows     int // data rows read, header excluded
	Skipped  int // rows without an id
	Created  int
	Existing int
}

// Importer find-or-creates clicks read from CSV. It must not run
// concurrently with another importer over overlapping data: the
// (campaign, timestamp) check is not protected by a unique constraint.
type Importer struct {
	repo   port.ClickRepository
	logger *slog.Logger
}

// New returns an Importer writing through repo.
func New(repo port.ClickRepository, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{repo: repo, logger: logger}
}

// Import reads r as CSV with a header row naming at least the id,
// campaign and timestamp columns, in any order. timestamp holds epoch
// seconds. Rows with an empty id are skipped. The first malformed row
// stops the import; clicks stored before it are kept.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return stats, errors.Wrap(ErrMissingColumn, "empty input")
	}
	if err != nil {
		return stats, errors.Wrap(err, "read header")
	}
	cols, err := columnIndex(header)
	if err != nil {
		return stats, err
	}
	width := 0
	for _, name := range requiredColumns {
		width = max(width, cols[name]+1)
	}

	for {
		if err = ctx.Err(); err != nil {
			return stats, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already names the line
			return stats, errors.Wrap(err, "read row")
		}
		line, _ := cr.FieldPos(0)
		stats.Rows++
		if len(record) < width {
			return stats, errors.Errorf("line %d: expected at least %d fields, got %d", line, width, len(record))
		}

		if strings.TrimSpace(record[cols["id"]]) == "" {
			stats.Skipped++
			continue
		}

		click, err := parseRow(record, cols)
		if err != nil {
			return stats, errors.Wrapf(err, "line %d", line)
		}

		created, err := im.repo.GetOrCreate(ctx, click)
		if err != nil {
			return stats, errors.Wrapf(err, "line %d: store click", line)
		}
		if created {
			stats.Created++
		} else {
			stats.Existing++
		}
	}

	im.logger.Info("clicks imported",
		slog.Int("rows", stats.Rows),
		slog.Int("skipped", stats.Skipped),
		slog.Int("created", stats.Created),
		slog.Int("existing", stats.Existing),
	)
	return stats, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, errors.Wrap(ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func parseRow(record []string, cols map[string]int) (*domain.Click, error) {
	campaign, err := strconv.ParseInt(strings.TrimSpace(record[cols["campaign"]]), 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "campaign")
	}
	epoch, err := strconv.ParseInt(strings.TrimSpace(record[cols["timestamp"]]), 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "timestamp")
	}
	return &domain.Click{Campaign: campaign, Timestamp: time.Unix(epoch, 0).UTC()}, nil
}
