package rating

import (
	"math"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
)

// DefaultDeltaIntensity is the divisor of the delta blend factor. Larger
// values mute the color shift per rating point.
const DefaultDeltaIntensity = 800

// RGB is a display color as channel triple.
type RGB struct {
	R, G, B int
}

// band is one step of a judge's rating color scale: ratings strictly below
// Upto take Color.
type band struct {
	upto  float64
	color string
}

// Per-judge threshold tables. A rating of zero or below is always black
// (unrated); the final band is open-ended.
var (
	codeforcesBands = []band{
		{1200, "#808080"},
		{1400, "#008000"},
		{1600, "#03a89e"},
		{1900, "#0000ff"},
		{2100, "#a000a0"},
		{2400, "#ff8c00"},
	}
	atcoderBands = []band{
		{400, "#808080"},
		{800, "#804000"},
		{1200, "#008000"},
		{1600, "#00c0c0"},
		{2000, "#0000ff"},
		{2400, "#c0c000"},
		{2800, "#ff8000"},
	}
	tlxBands = []band{
		{1650, "#b7b7b7"},
		{1750, "#70ad47"},
		{2000, "#3c78d8"},
		{2200, "#7030a0"},
		{2500, "#f6b26b"},
		{3000, "#ff0000"},
	}
)

const (
	colorUnrated = "#000000"
	colorTop     = "#ff0000"
)

// Color maps an absolute rating to the judge's display color.
func Color(j judge.Judge, rating float64) string {
	if rating <= 0 {
		return colorUnrated
	}
	var bands []band
	switch j {
	case judge.Codeforces:
		bands = codeforcesBands
	case judge.AtCoder:
		bands = atcoderBands
	case judge.TLX:
		bands = tlxBands
	default:
		return colorUnrated
	}
	for _, b := range bands {
		if rating < b.upto {
			return b.color
		}
	}
	return colorTop
}

// DeltaColor maps a rating change to a background color: white for no
// change, otherwise white blended toward red (negative) or green (positive)
// with saturation growing in |delta|.
func DeltaColor(delta float64, intensity int) RGB {
	if delta == 0 {
		return RGB{255, 255, 255}
	}
	if intensity <= 0 {
		intensity = DefaultDeltaIntensity
	}
	var r, g float64
	if delta < 0 {
		r = 255
	} else {
		g = 255
	}
	alpha := (15 + 2*math.Abs(delta)) / float64(intensity)
	return RGB{
		R: blendChannel(alpha, r),
		G: blendChannel(alpha, g),
		B: blendChannel(alpha, 0),
	}
}

func blendChannel(alpha, channel float64) int {
	v := math.Floor((1-alpha)*255 + alpha*channel + 0.5)
	return int(math.Max(0, math.Min(255, v)))
}
