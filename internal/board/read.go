package board

import (
	"context"
	"fmt"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
)

// Entry is one ranked row of the cumulative table.
type Entry struct {
	Place int     `json:"place"`
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// TopN returns up to limit ranked entries of the cumulative table in the
// store's current row order. Rows carrying the place sentinel are unranked
// and excluded.
func (b *Board) TopN(ctx context.Context, limit int) ([]Entry, error) {
	lastRow, err := b.store.LastRow(ctx, b.tableName)
	if err != nil {
		return nil, fmt.Errorf("read table extent: %w", err)
	}
	if lastRow < DataStartRow || limit <= 0 {
		return []Entry{}, nil
	}
	grid, err := b.store.GetRange(ctx, b.tableName, DataStartRow, ColPlace, lastRow, b.schema.TotalColumn())
	if err != nil {
		return nil, fmt.Errorf("read table rows: %w", err)
	}

	entries := make([]Entry, 0, limit)
	for _, row := range grid {
		if len(entries) == limit {
			break
		}
		e, ok := b.entryFromRow(row)
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Rank returns the entry of a single handle on the given judge.
func (b *Board) Rank(ctx context.Context, j judge.Judge, handle string) (Entry, error) {
	rows, err := b.RowByHandle(ctx, j)
	if err != nil {
		return Entry{}, err
	}
	row, ok := rows[handle]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrHandleNotFound, handle)
	}
	grid, err := b.store.GetRange(ctx, b.tableName, row, ColPlace, row, b.schema.TotalColumn())
	if err != nil {
		return Entry{}, fmt.Errorf("read table row: %w", err)
	}
	e, ok := b.entryFromRow(grid[0])
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrHandleNotFound, handle)
	}
	return e, nil
}

// entryFromRow decodes a [place..total] slice of cumulative-table cells.
// Rows without a numeric place are unranked.
func (b *Board) entryFromRow(row []interface{}) (Entry, bool) {
	place, ok := asInt(row[ColPlace-1])
	if !ok {
		return Entry{}, false
	}
	name, _ := asString(row[ColName-1])
	total, _ := asFloat(row[b.schema.TotalColumn()-1])
	return Entry{Place: place, Name: name, Total: total}, true
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
