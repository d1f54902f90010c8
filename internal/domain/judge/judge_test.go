package judge_test

import (
	"errors"
	"testing"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given wire-format judge names", t, func() {
		Convey("Then the known judges should parse", func() {
			for _, name := range []string{"codeforces", "atcoder", "tlx"} {
				j, err := judge.Parse(name)
				So(err, ShouldBeNil)
				So(string(j), ShouldEqual, name)
			}
		})

		Convey("And unknown names should be rejected", func() {
			_, err := judge.Parse("topcoder")
			So(errors.Is(err, judge.ErrUnknownJudge), ShouldBeTrue)
		})
	})
}

func TestURLs(t *testing.T) {
	Convey("Given each judge", t, func() {
		Convey("Then profile URLs should follow the judge's scheme", func() {
			So(judge.Codeforces.ProfileURL("tourist"), ShouldEqual, "https://codeforces.com/profile/tourist")
			So(judge.AtCoder.ProfileURL("tourist"), ShouldEqual, "https://atcoder.jp/users/tourist")
			So(judge.TLX.ProfileURL("tourist"), ShouldEqual, "https://tlx.toki.id/profiles/tourist")
		})

		Convey("And standings URLs should include the contest id", func() {
			So(judge.Codeforces.StandingsURL("1700", ""), ShouldEqual, "https://codeforces.com/contest/1700/standings")
			So(judge.Codeforces.StandingsURL("1700", "abc123"), ShouldEqual, "https://codeforces.com/contest/1700/standings?list=abc123")
			So(judge.AtCoder.StandingsURL("abc300", ""), ShouldEqual, "https://atcoder.jp/contests/abc300/standings")
			So(judge.TLX.StandingsURL("troc-30", ""), ShouldEqual, "https://tlx.toki.id/contests/troc-30/scoreboard")
		})

		Convey("And only atcoder should produce per-result links", func() {
			So(judge.AtCoder.ResultURL("abc300", "snuke"), ShouldEqual, "https://atcoder.jp/contests/abc300/standings?watching=snuke")
			So(judge.Codeforces.ResultURL("1700", "tourist"), ShouldEqual, "")
		})
	})
}
