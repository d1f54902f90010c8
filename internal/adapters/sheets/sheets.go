// Package sheets defines the narrow Tabular Store interface the rating
// engine mutates, the formula builder rendered into the store's dialect, and
// an in-memory implementation used by tests and local runs.
package sheets

import "context"

// TextStyle describes the text rendering of a single cell.
type TextStyle struct {
	Color     string // hex color, e.g. "#ff0000"
	Bold      bool
	Underline bool
}

// Store is the contract between the rating engine and the hosting
// spreadsheet runtime. Rows and columns are 1-based throughout.
type Store interface {
	// SheetExists reports whether a sheet with the given name exists.
	SheetExists(ctx context.Context, name string) (bool, error)

	// CreateSheet appends a new empty sheet at the end of the workbook.
	// Returns ErrSheetExists when the name is taken.
	CreateSheet(ctx context.Context, name string) error

	// SetValue writes a literal value into a cell.
	SetValue(ctx context.Context, sheet string, row, col int, value interface{}) error

	// SetFormula writes a formula into a cell.
	SetFormula(ctx context.Context, sheet string, row, col int, f Formula) error

	// SetColumnWidth sets the display width of a column in pixels.
	SetColumnWidth(ctx context.Context, sheet string, col, width int) error

	// SetTextStyle styles the text of a cell.
	SetTextStyle(ctx context.Context, sheet string, row, col int, style TextStyle) error

	// SetBackground colors the background of a cell.
	SetBackground(ctx context.Context, sheet string, row, col, r, g, b int) error

	// GetRange returns the literal values of the inclusive rectangle
	// [row1..row2] x [col1..col2]; unset cells read as nil.
	GetRange(ctx context.Context, sheet string, row1, col1, row2, col2 int) ([][]interface{}, error)

	// SortRange reorders whole rows of the inclusive rectangle by the
	// values of byColumn (an absolute column index inside the rectangle).
	// The sort is stable on the store's current row order.
	SortRange(ctx context.Context, sheet string, row1, col1, row2, col2, byColumn int, descending bool) error

	// LastRow returns the last populated row of the sheet, 0 when empty.
	LastRow(ctx context.Context, sheet string) (int, error)

	// LastColumn returns the last populated column of the sheet, 0 when empty.
	LastColumn(ctx context.Context, sheet string) (int, error)
}
