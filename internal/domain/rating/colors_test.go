package rating_test

import (
	"testing"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
	"github.com/AsMaNick/RatingCalculator/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func TestColorBands(t *testing.T) {
	Convey("Given the codeforces scale", t, func() {
		cases := []struct {
			rating float64
			color  string
		}{
			{-100, "#000000"},
			{0, "#000000"},
			{1, "#808080"},
			{1199, "#808080"},
			{1200, "#008000"},
			{1399, "#008000"},
			{1400, "#03a89e"},
			{1599, "#03a89e"},
			{1600, "#0000ff"},
			{1899, "#0000ff"},
			{1900, "#a000a0"},
			{2099, "#a000a0"},
			{2100, "#ff8c00"},
			{2399, "#ff8c00"},
			{2400, "#ff0000"},
			{3500, "#ff0000"},
		}

		Convey("Then every boundary should land in its band", func() {
			for _, c := range cases {
				So(rating.Color(judge.Codeforces, c.rating), ShouldEqual, c.color)
			}
		})
	})

	Convey("Given the atcoder scale", t, func() {
		cases := []struct {
			rating float64
			color  string
		}{
			{0, "#000000"},
			{399, "#808080"},
			{400, "#804000"},
			{800, "#008000"},
			{1200, "#00c0c0"},
			{1600, "#0000ff"},
			{2000, "#c0c000"},
			{2400, "#ff8000"},
			{2800, "#ff0000"},
		}

		Convey("Then every boundary should land in its band", func() {
			for _, c := range cases {
				So(rating.Color(judge.AtCoder, c.rating), ShouldEqual, c.color)
			}
		})
	})

	Convey("Given the tlx scale", t, func() {
		cases := []struct {
			rating float64
			color  string
		}{
			{0, "#000000"},
			{1649, "#b7b7b7"},
			{1650, "#70ad47"},
			{1750, "#3c78d8"},
			{2000, "#7030a0"},
			{2200, "#f6b26b"},
			{2500, "#ff0000"},
			{3000, "#ff0000"},
		}

		Convey("Then every boundary should land in its band", func() {
			for _, c := range cases {
				So(rating.Color(judge.TLX, c.rating), ShouldEqual, c.color)
			}
		})
	})

	Convey("Given any judge and any rating", t, func() {
		Convey("Then exactly one color should always be returned", func() {
			for _, j := range judge.Default() {
				for r := -500.0; r <= 4000; r += 7 {
					So(rating.Color(j, r), ShouldNotBeEmpty)
				}
			}
		})
	})
}

func TestDeltaColor(t *testing.T) {
	Convey("Given rating deltas", t, func() {
		Convey("When the delta is zero", func() {
			So(rating.DeltaColor(0, rating.DefaultDeltaIntensity), ShouldResemble, rating.RGB{255, 255, 255})
		})

		Convey("When the rating rose by 150", func() {
			// alpha = (15 + 300) / 800 = 0.39375
			c := rating.DeltaColor(150, rating.DefaultDeltaIntensity)

			Convey("Then the background should be green-tinted", func() {
				So(c, ShouldResemble, rating.RGB{155, 255, 155})
			})
		})

		Convey("When the rating fell by 150", func() {
			c := rating.DeltaColor(-150, rating.DefaultDeltaIntensity)

			Convey("Then the background should be the red mirror", func() {
				So(c, ShouldResemble, rating.RGB{255, 155, 155})
			})
		})

		Convey("When deltas grow in magnitude", func() {
			small := rating.DeltaColor(50, rating.DefaultDeltaIntensity)
			large := rating.DeltaColor(300, rating.DefaultDeltaIntensity)

			Convey("Then the blend should move strictly closer to pure green", func() {
				So(large.R, ShouldBeLessThan, small.R)
				So(large.B, ShouldBeLessThan, small.B)
				So(large.G, ShouldEqual, 255)
			})
		})

		Convey("When the delta is extreme", func() {
			c := rating.DeltaColor(5000, rating.DefaultDeltaIntensity)

			Convey("Then channels should clamp at pure green", func() {
				So(c, ShouldResemble, rating.RGB{0, 255, 0})
			})
		})
	})
}
