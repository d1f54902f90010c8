package board

import (
	"context"
	"fmt"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
)

// RowByHandle maps every handle in the judge's column of the cumulative
// table to its row index. The map is rebuilt from the store on every call:
// the roster mutates between requests and must never be cached. Later
// duplicates overwrite earlier rows (last wins).
func (b *Board) RowByHandle(ctx context.Context, j judge.Judge) (map[string]int, error) {
	col, err := b.schema.HandleColumn(j)
	if err != nil {
		return nil, err
	}
	lastRow, err := b.store.LastRow(ctx, b.tableName)
	if err != nil {
		return nil, fmt.Errorf("read roster extent: %w", err)
	}
	rows := make(map[string]int)
	if lastRow < DataStartRow {
		return rows, nil
	}
	grid, err := b.store.GetRange(ctx, b.tableName, DataStartRow, col, lastRow, col)
	if err != nil {
		return nil, fmt.Errorf("read roster handles: %w", err)
	}
	for i, row := range grid {
		if handle, ok := asString(row[0]); ok {
			rows[handle] = DataStartRow + i
		}
	}
	return rows, nil
}

// RosterSize returns the number of participant rows in the cumulative table.
func (b *Board) RosterSize(ctx context.Context) (int, error) {
	lastRow, err := b.store.LastRow(ctx, b.tableName)
	if err != nil {
		return 0, err
	}
	if lastRow < DataStartRow {
		return 0, nil
	}
	return lastRow - DataStartRow + 1, nil
}

// ContestCount returns the number of contest columns appended so far.
func (b *Board) ContestCount(ctx context.Context) (int, error) {
	lastCol, err := b.store.LastColumn(ctx, b.tableName)
	if err != nil {
		return 0, err
	}
	if lastCol <= b.schema.TotalColumn() {
		return 0, nil
	}
	return lastCol - b.schema.TotalColumn(), nil
}
