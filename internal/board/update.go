package board

import (
	"context"
	"fmt"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/sheets"
	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
	"github.com/AsMaNick/RatingCalculator/internal/domain/rating"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
	"github.com/AsMaNick/RatingCalculator/pkg/metrics"
)

// UpdateRatings recolors handle cells and rewrites the rating-change cells
// of the cumulative table from judge-reported rating transitions. Handles
// missing from the roster are logged and skipped; the rest of the batch is
// still applied.
func (b *Board) UpdateRatings(ctx context.Context, p model.Payload) error {
	rows, err := b.RowByHandle(ctx, p.OnlineJudge)
	if err != nil {
		return err
	}
	handleCol, err := b.schema.HandleColumn(p.OnlineJudge)
	if err != nil {
		return err
	}
	deltaCol, err := b.schema.DeltaColumn(p.OnlineJudge)
	if err != nil {
		return err
	}

	applied, skipped := 0, 0
	for _, ev := range p.Ratings {
		row, ok := rows[ev.Handle]
		if !ok {
			skipped++
			metrics.RecordUnknownHandle()
			b.log.Warn(ctx, "rating change for unknown handle",
				logger.String("handle", ev.Handle),
				logger.String("judge", string(p.OnlineJudge)),
			)
			b.logRow(ctx, fmt.Sprintf("FAIL update_ratings: unknown handle %s (%s)", ev.Handle, p.OnlineJudge))
			continue
		}

		style := sheets.TextStyle{
			Color: rating.Color(p.OnlineJudge, ev.NewRating),
			Bold:  ev.NewRating > 0,
		}
		if err := b.store.SetTextStyle(ctx, b.tableName, row, handleCol, style); err != nil {
			return fmt.Errorf("style handle cell: %w", err)
		}

		text := formatRating(ev.OldRating) + " → " + formatRating(ev.NewRating)
		if err := b.store.SetValue(ctx, b.tableName, row, deltaCol, text); err != nil {
			return fmt.Errorf("write rating change: %w", err)
		}

		c := rating.DeltaColor(ev.NewRating-ev.OldRating, b.deltaIntensity)
		if err := b.store.SetBackground(ctx, b.tableName, row, deltaCol, c.R, c.G, c.B); err != nil {
			return fmt.Errorf("color rating change: %w", err)
		}
		applied++
		metrics.RecordRatingEvent()
	}

	b.log.Info(ctx, "rating changes applied",
		logger.String("judge", string(p.OnlineJudge)),
		logger.Int("applied", applied),
		logger.Int("skipped", skipped),
	)
	return nil
}
