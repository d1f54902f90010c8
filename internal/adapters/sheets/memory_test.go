package sheets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/sheets"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStoreSheets(t *testing.T) {
	Convey("Given an empty workbook", t, func() {
		ctx := context.Background()
		store := sheets.NewMemoryStore()

		Convey("When creating a sheet", func() {
			So(store.CreateSheet(ctx, "Round1"), ShouldBeNil)

			Convey("Then it should exist", func() {
				ok, err := store.SheetExists(ctx, "Round1")
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})

			Convey("And creating it again should fail", func() {
				So(errors.Is(store.CreateSheet(ctx, "Round1"), sheets.ErrSheetExists), ShouldBeTrue)
			})

			Convey("And sheet order should follow creation order", func() {
				So(store.CreateSheet(ctx, "Round2"), ShouldBeNil)
				So(store.SheetNames(), ShouldResemble, []string{"Round1", "Round2"})
			})
		})

		Convey("When touching a missing sheet", func() {
			Convey("Then operations should report ErrSheetNotFound", func() {
				So(errors.Is(store.SetValue(ctx, "nope", 1, 1, "x"), sheets.ErrSheetNotFound), ShouldBeTrue)
				_, err := store.LastRow(ctx, "nope")
				So(errors.Is(err, sheets.ErrSheetNotFound), ShouldBeTrue)
			})
		})

		Convey("When pre-seeding sheets via options", func() {
			seeded := sheets.NewMemoryStore(sheets.WithSheets("Rating", "Config"))
			ok, err := seeded.SheetExists(ctx, "Rating")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(seeded.SheetNames(), ShouldResemble, []string{"Rating", "Config"})
		})
	})
}

func TestMemoryStoreCells(t *testing.T) {
	Convey("Given a sheet", t, func() {
		ctx := context.Background()
		store := sheets.NewMemoryStore(sheets.WithSheets("Round1"))

		Convey("When writing values, formulas, styles and backgrounds", func() {
			So(store.SetValue(ctx, "Round1", 2, 4, 100.0), ShouldBeNil)
			So(store.SetFormula(ctx, "Round1", 2, 3, sheets.Hyperlink{URL: "https://x", Label: "x"}), ShouldBeNil)
			So(store.SetTextStyle(ctx, "Round1", 2, 3, sheets.TextStyle{Color: "#ff0000", Bold: true}), ShouldBeNil)
			So(store.SetBackground(ctx, "Round1", 2, 3, 155, 255, 155), ShouldBeNil)
			So(store.SetColumnWidth(ctx, "Round1", 2, 300), ShouldBeNil)

			Convey("Then they should read back", func() {
				So(store.Value("Round1", 2, 4), ShouldEqual, 100.0)
				So(store.FormulaAt("Round1", 2, 3), ShouldEqual, `=HYPERLINK("https://x"; "x")`)
				style, ok := store.StyleAt("Round1", 2, 3)
				So(ok, ShouldBeTrue)
				So(style.Color, ShouldEqual, "#ff0000")
				So(style.Bold, ShouldBeTrue)
				bg, ok := store.BackgroundAt("Round1", 2, 3)
				So(ok, ShouldBeTrue)
				So(bg, ShouldResemble, [3]int{155, 255, 155})
				So(store.WidthOf("Round1", 2), ShouldEqual, 300)
			})

			Convey("And extents should track the touched cells", func() {
				lastRow, err := store.LastRow(ctx, "Round1")
				So(err, ShouldBeNil)
				So(lastRow, ShouldEqual, 2)
				lastCol, err := store.LastColumn(ctx, "Round1")
				So(err, ShouldBeNil)
				So(lastCol, ShouldEqual, 4)
			})
		})

		Convey("When reading a range", func() {
			So(store.SetValue(ctx, "Round1", 1, 1, "a"), ShouldBeNil)
			So(store.SetValue(ctx, "Round1", 2, 2, 5.0), ShouldBeNil)

			grid, err := store.GetRange(ctx, "Round1", 1, 1, 2, 2)
			So(err, ShouldBeNil)

			Convey("Then unset cells should read as nil", func() {
				So(grid, ShouldResemble, [][]interface{}{
					{"a", nil},
					{nil, 5.0},
				})
			})

			Convey("And an inverted range should be rejected", func() {
				_, err := store.GetRange(ctx, "Round1", 2, 1, 1, 2)
				So(errors.Is(err, sheets.ErrBadRange), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryStoreSortRange(t *testing.T) {
	Convey("Given rows with totals", t, func() {
		ctx := context.Background()
		store := sheets.NewMemoryStore(sheets.WithSheets("Rating"))

		// rows 4..6: (name, total)
		rows := []struct {
			name  string
			total interface{}
		}{
			{"B", 10.0},
			{"A", 30.0},
			{"C", 20.0},
		}
		for i, r := range rows {
			So(store.SetValue(ctx, "Rating", 4+i, 1, r.name), ShouldBeNil)
			So(store.SetValue(ctx, "Rating", 4+i, 2, r.total), ShouldBeNil)
		}

		Convey("When sorting descending by the total column", func() {
			So(store.SortRange(ctx, "Rating", 4, 1, 6, 2, 2, true), ShouldBeNil)

			Convey("Then rows should be reordered wholesale", func() {
				So(store.Value("Rating", 4, 1), ShouldEqual, "A")
				So(store.Value("Rating", 5, 1), ShouldEqual, "C")
				So(store.Value("Rating", 6, 1), ShouldEqual, "B")
				So(store.Value("Rating", 4, 2), ShouldEqual, 30.0)
			})
		})

		Convey("When some rows have no numeric total", func() {
			So(store.SetValue(ctx, "Rating", 7, 1, "D"), ShouldBeNil)
			So(store.SetValue(ctx, "Rating", 7, 2, "-"), ShouldBeNil)
			So(store.SortRange(ctx, "Rating", 4, 1, 7, 2, 2, true), ShouldBeNil)

			Convey("Then non-numeric rows should sink below numeric ones", func() {
				So(store.Value("Rating", 7, 1), ShouldEqual, "D")
			})
		})

		Convey("When the sort column lies outside the range", func() {
			So(errors.Is(store.SortRange(ctx, "Rating", 4, 1, 6, 2, 9, true), sheets.ErrBadRange), ShouldBeTrue)
		})
	})
}
