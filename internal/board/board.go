// Package board implements the rating-board engine: per-contest standings
// sheets, the cumulative rating table, and judge rating updates, all applied
// through the Tabular Store. The engine keeps no state of its own; every
// operation rebuilds its bookkeeping from the store.
package board

import (
	"context"
	"fmt"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/sheets"
	"github.com/AsMaNick/RatingCalculator/internal/config"
	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
)

// Board mutates the rating workbook through a Store. Callers are expected
// to hold the process-wide board lock around every mutating call.
type Board struct {
	store  sheets.Store
	schema Schema
	log    logger.Logger

	tableName      string
	configSheet    string
	logSheet       string
	listKey        string
	roundTypes     []string
	minFieldSize   int
	deltaIntensity int
}

// Option applies a configuration option to the Board.
type Option func(*Board)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(b *Board) {
		if log != nil {
			b.log = log
		}
	}
}

// WithTableName sets the cumulative table sheet name.
func WithTableName(name string) Option {
	return func(b *Board) {
		if name != "" {
			b.tableName = name
		}
	}
}

// WithConfigSheetName sets the sheet holding round-type coefficient cells.
func WithConfigSheetName(name string) Option {
	return func(b *Board) {
		if name != "" {
			b.configSheet = name
		}
	}
}

// WithLogSheetName sets the debug log sheet; empty disables debug rows.
func WithLogSheetName(name string) Option {
	return func(b *Board) {
		b.logSheet = name
	}
}

// WithJudges fixes the judge column order of the cumulative table.
func WithJudges(judges []judge.Judge) Option {
	return func(b *Board) {
		if len(judges) > 0 {
			b.schema = NewSchema(judges)
		}
	}
}

// WithRoundTypes sets the keywords of the coefficient lookup.
func WithRoundTypes(types []string) Option {
	return func(b *Board) {
		b.roundTypes = types
	}
}

// WithCodeforcesListKey narrows codeforces standings links to a list.
func WithCodeforcesListKey(key string) Option {
	return func(b *Board) {
		b.listKey = key
	}
}

// WithMinFieldSize sets the rating formula's field-size floor.
func WithMinFieldSize(n int) Option {
	return func(b *Board) {
		if n >= 1 {
			b.minFieldSize = n
		}
	}
}

// WithDeltaIntensity sets the rating-delta color intensity divisor.
func WithDeltaIntensity(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.deltaIntensity = n
		}
	}
}

// New constructs a Board over the given store with default configuration.
func New(store sheets.Store, opts ...Option) *Board {
	defaults := config.New()
	b := &Board{
		store:          store,
		schema:         NewSchema(judge.Default()),
		tableName:      defaults.TableName,
		configSheet:    defaults.ConfigSheetName,
		logSheet:       defaults.LogSheetName,
		roundTypes:     defaults.RoundTypes,
		minFieldSize:   defaults.MinFieldSize,
		deltaIntensity: defaults.DeltaColorIntensity,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logger.Get()
	}
	return b
}

// Schema returns the column schema of the cumulative table.
func (b *Board) Schema() Schema {
	return b.schema
}

// logRow appends a best-effort debug row to the log sheet; failures are
// ignored because the log sheet is incidental I/O.
func (b *Board) logRow(ctx context.Context, msg string) {
	if b.logSheet == "" {
		return
	}
	ok, err := b.store.SheetExists(ctx, b.logSheet)
	if err != nil || !ok {
		return
	}
	last, err := b.store.LastRow(ctx, b.logSheet)
	if err != nil {
		return
	}
	_ = b.store.SetValue(ctx, b.logSheet, last+1, 1, msg)
}

// asString reads a cell value as a non-empty string.
func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// formatRating prints a rating without a trailing ".0" for whole numbers.
func formatRating(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
