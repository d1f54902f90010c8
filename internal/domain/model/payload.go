// Package model contains the wire payload types posted by the scraping bots.
package model

import (
	"errors"
	"strings"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
)

// Action selects the operation a webhook payload requests.
type Action string

// Supported payload actions.
const (
	ActionAddStandings  Action = "add_standings"
	ActionUpdateRatings Action = "update_ratings"
)

// Participant carries one person's identity per judge. Handles for judges
// the person is not registered on are empty; no cross-judge identity
// resolution is performed.
type Participant struct {
	Name             string `json:"name"`
	CodeforcesHandle string `json:"codeforces_handle,omitempty"`
	AtCoderHandle    string `json:"atcoder_handle,omitempty"`
	TLXHandle        string `json:"tlx_handle,omitempty"`
}

// Handle returns the participant's handle on the given judge.
func (p Participant) Handle(j judge.Judge) string {
	switch j {
	case judge.Codeforces:
		return p.CodeforcesHandle
	case judge.AtCoder:
		return p.AtCoderHandle
	case judge.TLX:
		return p.TLXHandle
	}
	return ""
}

// ContestResult is one ranked row of a contest, in the judge's own order.
type ContestResult struct {
	Place      int         `json:"place"`
	User       Participant `json:"user"`
	Points     float64     `json:"points"`
	Penalty    float64     `json:"penalty"`
	IsOfficial bool        `json:"is_official"`
}

// RatingChange is one judge-reported rating transition for a handle.
type RatingChange struct {
	Handle    string  `json:"handle"`
	OldRating float64 `json:"old_rating"`
	NewRating float64 `json:"new_rating"`
}

// Payload is the webhook body. Results is populated for add_standings,
// Ratings for update_ratings; SheetName doubles as the idempotency key for
// contest processing.
type Payload struct {
	Action               Action          `json:"action"`
	SheetName            string          `json:"sheet_name,omitempty"`
	OnlineJudge          judge.Judge     `json:"online_judge"`
	ContestID            string          `json:"contest_id,omitempty"`
	StartDate            string          `json:"start_date,omitempty"`
	Results              []ContestResult `json:"results,omitempty"`
	OfficialParticipants int             `json:"official_participants,omitempty"`
	Ratings              []RatingChange  `json:"ratings,omitempty"`
}

// Validate checks the payload shape for the action it declares.
func (p Payload) Validate() error {
	if _, err := judge.Parse(string(p.OnlineJudge)); err != nil {
		return err
	}
	switch p.Action {
	case ActionAddStandings:
		switch {
		case strings.TrimSpace(p.SheetName) == "":
			return errors.New("missing sheet_name")
		case strings.TrimSpace(p.ContestID) == "":
			return errors.New("missing contest_id")
		case len(p.Results) == 0:
			return errors.New("missing results")
		}
		for _, r := range p.Results {
			if r.Place < 1 {
				return errors.New("place must be >= 1")
			}
		}
		return nil
	case ActionUpdateRatings:
		if len(p.Ratings) == 0 {
			return errors.New("missing ratings")
		}
		for _, r := range p.Ratings {
			if strings.TrimSpace(r.Handle) == "" {
				return errors.New("missing handle in ratings")
			}
		}
		return nil
	}
	return errors.New("unknown action")
}

// OfficialCount returns the official participant count, falling back to the
// number of official results when the bot did not send an explicit count.
func (p Payload) OfficialCount() int {
	if p.OfficialParticipants > 0 {
		return p.OfficialParticipants
	}
	n := 0
	for _, r := range p.Results {
		if r.IsOfficial {
			n++
		}
	}
	if n == 0 {
		n = len(p.Results)
	}
	return n
}
