package board

import (
	"fmt"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
)

// Cumulative table layout. The first three rows carry per-contest metadata
// (coefficient formula, start date, standings link); participant rows start
// at DataStartRow.
const (
	ColPlace = 1
	ColName  = 2
	ColGroup = 3

	DataStartRow = 4

	// PlaceSentinel marks rows excluded from place numbering.
	PlaceSentinel = "-"
)

// Per-contest standings sheet layout: one header row, then one row per
// result in payload order.
const (
	StandingsHeaderRow   = 1
	StandingsDataRow     = 2
	StandingsColumns     = 7
	StandingsRatingCell  = "G" // column letter of the rating contribution
	standingsRatingIndex = 7
)

// Schema maps logical column roles of the cumulative table to physical
// indices for a fixed judge order.
type Schema struct {
	judges []judge.Judge
}

// NewSchema builds a schema for the given judge order.
func NewSchema(judges []judge.Judge) Schema {
	js := make([]judge.Judge, len(judges))
	copy(js, judges)
	return Schema{judges: js}
}

// Judges returns the judge order backing the schema.
func (s Schema) Judges() []judge.Judge {
	js := make([]judge.Judge, len(s.judges))
	copy(js, s.judges)
	return js
}

// HandleColumn returns the column holding handles for the judge.
func (s Schema) HandleColumn(j judge.Judge) (int, error) {
	for i, known := range s.judges {
		if known == j {
			return ColGroup + 1 + i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", judge.ErrUnknownJudge, j)
}

// DeltaColumn returns the column holding the judge's rating-change text.
func (s Schema) DeltaColumn(j judge.Judge) (int, error) {
	col, err := s.HandleColumn(j)
	if err != nil {
		return 0, err
	}
	return col + len(s.judges), nil
}

// TotalColumn returns the column holding the cumulative total rating.
func (s Schema) TotalColumn() int {
	return ColGroup + 1 + 2*len(s.judges)
}

// FirstContestColumn returns the column of the first appended contest.
func (s Schema) FirstContestColumn() int {
	return s.TotalColumn() + 1
}
