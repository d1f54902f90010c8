package sheets

import (
	"fmt"
	"strings"
)

// Formula is a spreadsheet formula built from tagged variants and rendered
// into the store's dialect. The dialect uses ";" as the argument separator
// and INDIRECT R1C1 references for cells addressed by position.
type Formula interface {
	// Render returns the formula string including the leading "=".
	Render() string
}

// CellRef addresses a cell of the current sheet by absolute position.
type CellRef struct {
	Row int
	Col int
}

func (c CellRef) ref() string {
	return fmt.Sprintf(`INDIRECT("R%dC%d"; FALSE)`, c.Row, c.Col)
}

// SheetCell addresses a cell of another sheet in A1 notation, e.g.
// {"Config", "B2"} renders as 'Config'!B2.
type SheetCell struct {
	Sheet string
	Cell  string
}

func (s SheetCell) ref() string {
	return fmt.Sprintf("'%s'!%s", s.Sheet, s.Cell)
}

// Hyperlink renders as a HYPERLINK formula.
type Hyperlink struct {
	URL   string
	Label string
}

func (h Hyperlink) Render() string {
	return fmt.Sprintf(`=HYPERLINK(%q; %q)`, h.URL, h.Label)
}

// LookupCase maps a keyword searched for in the target cell to the cell
// holding the matching value.
type LookupCase struct {
	Keyword string
	Value   SheetCell
}

// ConditionalLookup classifies the text of Target against an ordered list of
// keyword cases and selects the first matching case's value cell; Default is
// a literal used when nothing matches.
type ConditionalLookup struct {
	Target  CellRef
	Cases   []LookupCase
	Default string
}

func (c ConditionalLookup) Render() string {
	return "=" + c.render(c.Cases)
}

// render nests one IF(ISERROR(SEARCH(...))) level per case; the miss branch
// recurses into the remaining cases.
func (c ConditionalLookup) render(cases []LookupCase) string {
	if len(cases) == 0 {
		return c.Default
	}
	var b strings.Builder
	fmt.Fprintf(&b, `IF(ISERROR(SEARCH(%q; %s)); `, cases[0].Keyword, c.Target.ref())
	b.WriteString(c.render(cases[1:]))
	fmt.Fprintf(&b, `; %s)`, cases[0].Value.ref())
	return b.String()
}

// WeightedReference multiplies a coefficient cell of the current sheet by a
// cell of another sheet; used to pull a contest's rating contribution into
// the cumulative table scaled by the round-type coefficient.
type WeightedReference struct {
	Coefficient CellRef
	Source      SheetCell
}

func (w WeightedReference) Render() string {
	return fmt.Sprintf("=%s * %s", w.Coefficient.ref(), w.Source.ref())
}
