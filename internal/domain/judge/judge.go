// Package judge enumerates the supported online judges and their URL schemes.
package judge

import "fmt"

// Judge identifies an online contest-judging platform.
type Judge string

// Supported judges, in the default cumulative-table column order.
const (
	Codeforces Judge = "codeforces"
	AtCoder    Judge = "atcoder"
	TLX        Judge = "tlx"
)

// Default returns the default judge ordering used by the cumulative table.
// Column positions in the table are derived from this order, so it must
// stay stable once a table has been created.
func Default() []Judge {
	return []Judge{Codeforces, AtCoder, TLX}
}

// Parse validates a wire-format judge name.
func Parse(s string) (Judge, error) {
	switch Judge(s) {
	case Codeforces, AtCoder, TLX:
		return Judge(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownJudge, s)
}

// ProfileURL returns the public profile page for a handle.
func (j Judge) ProfileURL(handle string) string {
	switch j {
	case Codeforces:
		return "https://codeforces.com/profile/" + handle
	case AtCoder:
		return "https://atcoder.jp/users/" + handle
	case TLX:
		return "https://tlx.toki.id/profiles/" + handle
	}
	return ""
}

// StandingsURL returns the public standings page for a contest. For
// codeforces an optional list key narrows the standings to a private list.
func (j Judge) StandingsURL(contestID, listKey string) string {
	switch j {
	case Codeforces:
		if listKey != "" {
			return fmt.Sprintf("https://codeforces.com/contest/%s/standings?list=%s", contestID, listKey)
		}
		return fmt.Sprintf("https://codeforces.com/contest/%s/standings", contestID)
	case AtCoder:
		return fmt.Sprintf("https://atcoder.jp/contests/%s/standings", contestID)
	case TLX:
		return fmt.Sprintf("https://tlx.toki.id/contests/%s/scoreboard", contestID)
	}
	return ""
}

// ResultURL returns a standings page focused on a single participant.
// Only atcoder supports watching a handle; other judges return "".
func (j Judge) ResultURL(contestID, handle string) string {
	if j == AtCoder {
		return fmt.Sprintf("https://atcoder.jp/contests/%s/standings?watching=%s", contestID, handle)
	}
	return ""
}
