package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"iter"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsfeed"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsfeed.RunService = (*RunService)(nil)

// timeFormat is RFC3339 with fixed-width nanoseconds so stored timestamps
// sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// RunService implements newsfeed.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRun stores the run and every item of feed in one transaction.
func (s *RunService) CreateRun(ctx context.Context, run *newsfeed.Run, content string, feed *newsfeed.Feed) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()
	run.ContentHash = hashContent(content)
	run.Categories = feed.Len()
	run.Items = feed.Total()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, content_hash, categories, items, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.ContentHash, run.Categories, run.Items,
		run.CreatedAt.Format(timeFormat)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (run_id, position, category, title, description, url, datetime, time_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	// Items are stored category by category, so position order rebuilds
	// the same category order on read.
	position := 0
	for category, items := range feed.All() {
		for _, item := range items {
			if _, err := stmt.ExecContext(ctx, run.ID, position, category,
				item.Title, item.Description, item.URL, item.Datetime, item.TimeText); err != nil {
				return err
			}
			position++
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*newsfeed.Run, error) {
	runs, err := s.FindRuns(ctx, newsfeed.RunFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, newsfeed.Errorf(newsfeed.ENOTFOUND, "run %q not found", id)
	}
	return runs[0], nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter newsfeed.RunFilter) ([]*newsfeed.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, content_hash, categories, items, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*newsfeed.Run
	for rows.Next() {
		var run newsfeed.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.Source, &run.ContentHash, &run.Categories, &run.Items, &createdAt); err != nil {
			return nil, err
		}

		if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// FindFeedByRunID rebuilds the feed stored with a run.
func (s *RunService) FindFeedByRunID(ctx context.Context, id string) (*newsfeed.Feed, error) {
	if _, err := s.FindRunByID(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, title, description, url, datetime, time_text
		FROM items
		WHERE run_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scanErr error
	feed := newsfeed.Aggregate(scanEntries(rows, &scanErr))
	if scanErr != nil {
		return nil, scanErr
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feed, nil
}

// scanEntries yields one entry per row. The first scan error stops the
// sequence and is stored in errp.
func scanEntries(rows *sql.Rows, errp *error) iter.Seq[newsfeed.Entry] {
	return func(yield func(newsfeed.Entry) bool) {
		for rows.Next() {
			var e newsfeed.Entry
			if err := rows.Scan(&e.Category, &e.Item.Title, &e.Item.Description,
				&e.Item.URL, &e.Item.Datetime, &e.Item.TimeText); err != nil {
				*errp = err
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// DeleteRun permanently removes a run and its items.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsfeed.Errorf(newsfeed.ENOTFOUND, "run %q not found", id)
	}

	return nil
}
