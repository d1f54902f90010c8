package sheets

import (
	"context"
	"sort"
	"sync"
)

// cell holds everything the engine can write into one grid position.
type cell struct {
	value      interface{}
	formula    string
	style      TextStyle
	hasStyle   bool
	background [3]int
	hasBG      bool
}

type memSheet struct {
	cells  map[[2]int]*cell
	widths map[int]int
	maxRow int
	maxCol int
}

func newMemSheet() *memSheet {
	return &memSheet{
		cells:  make(map[[2]int]*cell),
		widths: make(map[int]int),
	}
}

func (s *memSheet) at(row, col int) *cell {
	c, ok := s.cells[[2]int{row, col}]
	if !ok {
		c = &cell{}
		s.cells[[2]int{row, col}] = c
		if row > s.maxRow {
			s.maxRow = row
		}
		if col > s.maxCol {
			s.maxCol = col
		}
	}
	return c
}

// MemoryStore is an in-process Store used by tests, the seeder, and local
// runs. It records values, formulas, widths, text styles, and backgrounds
// exactly as written, without evaluating formulas.
type MemoryStore struct {
	mu     sync.RWMutex
	sheets map[string]*memSheet
	order  []string
}

// compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory workbook.
func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{sheets: make(map[string]*memSheet)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) sheet(name string) (*memSheet, error) {
	s, ok := m.sheets[name]
	if !ok {
		return nil, ErrSheetNotFound
	}
	return s, nil
}

// SheetExists reports whether the named sheet exists.
func (m *MemoryStore) SheetExists(ctx context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sheets[name]
	return ok, nil
}

// CreateSheet appends a new empty sheet at the end of the workbook.
func (m *MemoryStore) CreateSheet(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[name]; ok {
		return ErrSheetExists
	}
	m.sheets[name] = newMemSheet()
	m.order = append(m.order, name)
	return nil
}

// SetValue writes a literal value into a cell.
func (m *MemoryStore) SetValue(ctx context.Context, sheet string, row, col int, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	if row < 1 || col < 1 {
		return ErrBadRange
	}
	s.at(row, col).value = value
	return nil
}

// SetFormula writes a rendered formula into a cell.
func (m *MemoryStore) SetFormula(ctx context.Context, sheet string, row, col int, f Formula) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	if row < 1 || col < 1 {
		return ErrBadRange
	}
	s.at(row, col).formula = f.Render()
	return nil
}

// SetColumnWidth sets the display width of a column.
func (m *MemoryStore) SetColumnWidth(ctx context.Context, sheet string, col, width int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	s.widths[col] = width
	return nil
}

// SetTextStyle styles the text of a cell.
func (m *MemoryStore) SetTextStyle(ctx context.Context, sheet string, row, col int, style TextStyle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	c := s.at(row, col)
	c.style = style
	c.hasStyle = true
	return nil
}

// SetBackground colors the background of a cell.
func (m *MemoryStore) SetBackground(ctx context.Context, sheet string, row, col, r, g, b int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	c := s.at(row, col)
	c.background = [3]int{r, g, b}
	c.hasBG = true
	return nil
}

// GetRange returns the literal values of the inclusive rectangle.
func (m *MemoryStore) GetRange(ctx context.Context, sheet string, row1, col1, row2, col2 int) ([][]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return nil, err
	}
	if row1 < 1 || col1 < 1 || row2 < row1 || col2 < col1 {
		return nil, ErrBadRange
	}
	grid := make([][]interface{}, 0, row2-row1+1)
	for r := row1; r <= row2; r++ {
		row := make([]interface{}, 0, col2-col1+1)
		for c := col1; c <= col2; c++ {
			if cl, ok := s.cells[[2]int{r, c}]; ok {
				row = append(row, cl.value)
			} else {
				row = append(row, nil)
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// SortRange reorders whole rows of the rectangle by byColumn. Rows compare
// by numeric value when both sides are numeric; non-numeric and empty cells
// sort below any number. The sort is stable.
func (m *MemoryStore) SortRange(ctx context.Context, sheet string, row1, col1, row2, col2, byColumn int, descending bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	if row1 < 1 || col1 < 1 || row2 < row1 || col2 < col1 || byColumn < col1 || byColumn > col2 {
		return ErrBadRange
	}

	rows := make([][]*cell, 0, row2-row1+1)
	for r := row1; r <= row2; r++ {
		row := make([]*cell, 0, col2-col1+1)
		for c := col1; c <= col2; c++ {
			row = append(row, s.cells[[2]int{r, c}])
		}
		rows = append(rows, row)
	}

	key := func(row []*cell) (float64, bool) {
		c := row[byColumn-col1]
		if c == nil {
			return 0, false
		}
		return asNumber(c.value)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		vi, oki := key(rows[i])
		vj, okj := key(rows[j])
		if oki != okj {
			// numbers before non-numbers in the requested direction
			return oki
		}
		if !oki {
			return false
		}
		if descending {
			return vi > vj
		}
		return vi < vj
	})

	for i, row := range rows {
		for j, c := range row {
			k := [2]int{row1 + i, col1 + j}
			if c == nil {
				delete(s.cells, k)
			} else {
				s.cells[k] = c
			}
		}
	}
	return nil
}

// LastRow returns the last populated row of the sheet.
func (m *MemoryStore) LastRow(ctx context.Context, sheet string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return 0, err
	}
	return s.maxRow, nil
}

// LastColumn returns the last populated column of the sheet.
func (m *MemoryStore) LastColumn(ctx context.Context, sheet string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, err := m.sheet(sheet)
	if err != nil {
		return 0, err
	}
	return s.maxCol, nil
}

// Inspection helpers for tests and the seeder's dry-run output. They read
// single cells without error plumbing; missing cells return zero values.

// SheetNames returns sheet names in creation order.
func (m *MemoryStore) SheetNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Value returns the literal value of a cell.
func (m *MemoryStore) Value(sheet string, row, col int) interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sheets[sheet]; ok {
		if c, ok := s.cells[[2]int{row, col}]; ok {
			return c.value
		}
	}
	return nil
}

// FormulaAt returns the rendered formula of a cell, "" when none.
func (m *MemoryStore) FormulaAt(sheet string, row, col int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sheets[sheet]; ok {
		if c, ok := s.cells[[2]int{row, col}]; ok {
			return c.formula
		}
	}
	return ""
}

// StyleAt returns the text style of a cell and whether one was set.
func (m *MemoryStore) StyleAt(sheet string, row, col int) (TextStyle, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sheets[sheet]; ok {
		if c, ok := s.cells[[2]int{row, col}]; ok {
			return c.style, c.hasStyle
		}
	}
	return TextStyle{}, false
}

// BackgroundAt returns the background RGB of a cell and whether one was set.
func (m *MemoryStore) BackgroundAt(sheet string, row, col int) ([3]int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sheets[sheet]; ok {
		if c, ok := s.cells[[2]int{row, col}]; ok {
			return c.background, c.hasBG
		}
	}
	return [3]int{}, false
}

// WidthOf returns the configured width of a column, 0 when unset.
func (m *MemoryStore) WidthOf(sheet string, col int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sheets[sheet]; ok {
		return s.widths[col]
	}
	return 0
}

// asNumber coerces the numeric value types the engine writes.
func asNumber(v interface{}) (float64, bool) {
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
