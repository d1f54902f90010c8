package board

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/sheets"
	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
	"github.com/AsMaNick/RatingCalculator/pkg/metrics"
)

const contestColumnWidth = 150

// coefficientCell returns the config-sheet cell holding the coefficient of
// the i-th round-type keyword. Coefficients live in column B starting at B2.
func (b *Board) coefficientCell(i int) sheets.SheetCell {
	return sheets.SheetCell{Sheet: b.configSheet, Cell: "B" + strconv.Itoa(2+i)}
}

// Aggregate appends one contest column to the cumulative table: three
// metadata rows (coefficient lookup, start date, standings link) and a
// weighted reference into the standings sheet for every roster member who
// appears in the results. The table is then resorted by total rating and
// places are renumbered.
func (b *Board) Aggregate(ctx context.Context, p model.Payload) error {
	rows, err := b.RowByHandle(ctx, p.OnlineJudge)
	if err != nil {
		return err
	}

	lastCol, err := b.store.LastColumn(ctx, b.tableName)
	if err != nil {
		return fmt.Errorf("read table extent: %w", err)
	}
	col := lastCol + 1
	if col < b.schema.FirstContestColumn() {
		col = b.schema.FirstContestColumn()
	}

	if err := b.writeContestHeader(ctx, p, col); err != nil {
		return err
	}

	unknown := 0
	for i, res := range p.Results {
		handle := res.User.Handle(p.OnlineJudge)
		if handle == "" {
			continue
		}
		row, ok := rows[handle]
		if !ok {
			unknown++
			metrics.RecordUnknownHandle()
			b.log.Warn(ctx, "handle not found in cumulative table",
				logger.String("handle", handle),
				logger.String("judge", string(p.OnlineJudge)),
				logger.String("sheet", p.SheetName),
			)
			b.logRow(ctx, fmt.Sprintf("FAIL aggregate %s: unknown handle %s (%s)", p.SheetName, handle, p.OnlineJudge))
			continue
		}
		f := sheets.WeightedReference{
			Coefficient: sheets.CellRef{Row: 1, Col: col},
			Source: sheets.SheetCell{
				Sheet: p.SheetName,
				Cell:  StandingsRatingCell + strconv.Itoa(StandingsDataRow+i),
			},
		}
		if err := b.store.SetFormula(ctx, b.tableName, row, col, f); err != nil {
			return fmt.Errorf("write contest reference: %w", err)
		}
	}

	if err := b.resort(ctx); err != nil {
		return err
	}

	b.log.Info(ctx, "contest column aggregated",
		logger.String("sheet", p.SheetName),
		logger.Int("column", col),
		logger.Int("results", len(p.Results)),
		logger.Int("unknown_handles", unknown),
	)
	return nil
}

func (b *Board) writeContestHeader(ctx context.Context, p model.Payload, col int) error {
	cases := make([]sheets.LookupCase, len(b.roundTypes))
	for i, keyword := range b.roundTypes {
		cases[i] = sheets.LookupCase{Keyword: keyword, Value: b.coefficientCell(i)}
	}
	lookup := sheets.ConditionalLookup{
		Target:  sheets.CellRef{Row: 3, Col: col},
		Cases:   cases,
		Default: "0",
	}
	if err := b.store.SetFormula(ctx, b.tableName, 1, col, lookup); err != nil {
		return fmt.Errorf("write coefficient formula: %w", err)
	}
	if err := b.store.SetValue(ctx, b.tableName, 2, col, p.StartDate); err != nil {
		return fmt.Errorf("write contest date: %w", err)
	}
	link := sheets.Hyperlink{
		URL:   p.OnlineJudge.StandingsURL(p.ContestID, b.listKey),
		Label: p.SheetName,
	}
	if err := b.store.SetFormula(ctx, b.tableName, 3, col, link); err != nil {
		return fmt.Errorf("write standings link: %w", err)
	}
	if err := b.store.SetColumnWidth(ctx, b.tableName, col, contestColumnWidth); err != nil {
		return fmt.Errorf("set contest column width: %w", err)
	}
	return nil
}

// resort orders participant rows by total rating descending and renumbers
// the place column, skipping rows marked with the place sentinel.
func (b *Board) resort(ctx context.Context) error {
	lastRow, err := b.store.LastRow(ctx, b.tableName)
	if err != nil {
		return fmt.Errorf("read table extent: %w", err)
	}
	if lastRow < DataStartRow {
		return nil
	}
	lastCol, err := b.store.LastColumn(ctx, b.tableName)
	if err != nil {
		return fmt.Errorf("read table extent: %w", err)
	}

	total := b.schema.TotalColumn()
	if err := b.store.SortRange(ctx, b.tableName, DataStartRow, 1, lastRow, lastCol, total, true); err != nil {
		return fmt.Errorf("sort cumulative table: %w", err)
	}

	places, err := b.store.GetRange(ctx, b.tableName, DataStartRow, ColPlace, lastRow, ColPlace)
	if err != nil {
		return fmt.Errorf("read place column: %w", err)
	}
	place := 0
	for i, row := range places {
		if s, ok := asString(row[0]); ok && s == PlaceSentinel {
			continue
		}
		place++
		if err := b.store.SetValue(ctx, b.tableName, DataStartRow+i, ColPlace, place); err != nil {
			return fmt.Errorf("renumber places: %w", err)
		}
	}
	return nil
}
