package board

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/sheets"
	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
	"github.com/AsMaNick/RatingCalculator/internal/domain/rating"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
)

// standingsWidths are the pixel widths of the seven standings columns.
var standingsWidths = []int{75, 300, 150, 75, 75, 75, 75}

var standingsHeaders = []string{"", "Name", "Handle", "Points", "Penalty", "Official", "Rating"}

// WriteStandings creates the per-contest sheet and fills it with ranked
// results and rating contributions. The caller must have verified that the
// sheet does not exist yet; a partially written sheet is not rolled back.
func (b *Board) WriteStandings(ctx context.Context, p model.Payload) error {
	if err := b.store.CreateSheet(ctx, p.SheetName); err != nil {
		return fmt.Errorf("create standings sheet: %w", err)
	}
	for i, w := range standingsWidths {
		if err := b.store.SetColumnWidth(ctx, p.SheetName, i+1, w); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	// Header row; the place header doubles as the standings link.
	link := sheets.Hyperlink{
		URL:   p.OnlineJudge.StandingsURL(p.ContestID, b.listKey),
		Label: "Place",
	}
	if err := b.store.SetFormula(ctx, p.SheetName, StandingsHeaderRow, 1, link); err != nil {
		return fmt.Errorf("write standings header: %w", err)
	}
	for col := 2; col <= StandingsColumns; col++ {
		if err := b.store.SetValue(ctx, p.SheetName, StandingsHeaderRow, col, standingsHeaders[col-1]); err != nil {
			return fmt.Errorf("write standings header: %w", err)
		}
	}

	winner := rating.WinnerScore(p.Results)
	official := p.OfficialCount()

	for i, res := range p.Results {
		row := StandingsDataRow + i
		if err := b.writeResultRow(ctx, p, row, res, winner, official); err != nil {
			return err
		}
	}

	b.log.Info(ctx, "standings sheet created",
		logger.String("sheet", p.SheetName),
		logger.String("judge", string(p.OnlineJudge)),
		logger.Int("results", len(p.Results)),
	)
	return nil
}

func (b *Board) writeResultRow(ctx context.Context, p model.Payload, row int, res model.ContestResult, winner float64, official int) error {
	contribution := rating.Round2(rating.Contribution(winner, official, res.Points, res.Place, b.minFieldSize))

	switch {
	case !res.IsOfficial:
		if err := b.store.SetValue(ctx, p.SheetName, row, 1, PlaceSentinel); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	default:
		handle := res.User.Handle(p.OnlineJudge)
		if url := p.OnlineJudge.ResultURL(p.ContestID, handle); url != "" && handle != "" {
			f := sheets.Hyperlink{URL: url, Label: strconv.Itoa(res.Place)}
			if err := b.store.SetFormula(ctx, p.SheetName, row, 1, f); err != nil {
				return fmt.Errorf("write result row: %w", err)
			}
		} else if err := b.store.SetValue(ctx, p.SheetName, row, 1, res.Place); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	}

	if err := b.store.SetValue(ctx, p.SheetName, row, 2, res.User.Name); err != nil {
		return fmt.Errorf("write result row: %w", err)
	}

	if handle := res.User.Handle(p.OnlineJudge); handle != "" {
		f := sheets.Hyperlink{URL: p.OnlineJudge.ProfileURL(handle), Label: handle}
		if err := b.store.SetFormula(ctx, p.SheetName, row, 3, f); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	} else if err := b.store.SetValue(ctx, p.SheetName, row, 3, PlaceSentinel); err != nil {
		return fmt.Errorf("write result row: %w", err)
	}

	cells := map[int]interface{}{
		4: res.Points,
		5: res.Penalty,
		6: res.IsOfficial,
		7: contribution,
	}
	for col := 4; col <= StandingsColumns; col++ {
		if err := b.store.SetValue(ctx, p.SheetName, row, col, cells[col]); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	}
	return nil
}
