package seeder

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
)

// Score generation constants.
const (
	maxContestPoints  = 3000.0
	maxPenaltyMinutes = 300
	unofficialEvery   = 5
	ratingBase        = 800
	ratingSpread      = 2200
	deltaSpread       = 200
)

// Sheet name templates per judge. The names carry round-type keywords so the
// coefficient lookup on the cumulative table resolves to a config cell.
var sheetTemplates = map[judge.Judge]string{
	judge.Codeforces: "Codeforces Round %d (Div. 2)",
	judge.AtCoder:    "AtCoder Beginner Contest %d (ABC)",
	judge.TLX:        "TLX Regular Open Contest %d (TROC)",
}

// randomInt returns a uniform int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateRoster builds synthetic participants with a unique handle per
// judge. The uuid suffix keeps repeated seeding runs from colliding.
func generateRoster(size int) []model.Participant {
	roster := make([]model.Participant, size)
	for i := range roster {
		tag := uuid.New().String()[:8]
		roster[i] = model.Participant{
			Name:             fmt.Sprintf("Seed User %03d (%s)", i+1, tag),
			CodeforcesHandle: fmt.Sprintf("seed_cf_%03d_%s", i+1, tag),
			AtCoderHandle:    fmt.Sprintf("seed_at_%03d_%s", i+1, tag),
			TLXHandle:        fmt.Sprintf("seed_tlx_%03d_%s", i+1, tag),
		}
	}
	return roster
}

// generateContests produces add_standings payloads cycling through the
// supported judges. Points decay with place; every fifth row is unofficial
// and keeps the previous official row's place.
func generateContests(roster []model.Participant, numContests int) []model.Payload {
	judges := judge.Default()
	payloads := make([]model.Payload, numContests)

	for c := 0; c < numContests; c++ {
		j := judges[c%len(judges)]
		round := 100 + c
		results := make([]model.ContestResult, len(roster))
		place := 0
		for i, p := range roster {
			official := (i+1)%unofficialEvery != 0
			if official {
				place++
			}
			points := maxContestPoints * float64(len(roster)-i) / float64(len(roster))
			results[i] = model.ContestResult{
				Place:      maxInt(place, 1),
				User:       p,
				Points:     points,
				Penalty:    float64(randomInt(maxPenaltyMinutes)),
				IsOfficial: official,
			}
		}
		payloads[c] = model.Payload{
			Action:      model.ActionAddStandings,
			SheetName:   fmt.Sprintf(sheetTemplates[j], round),
			OnlineJudge: j,
			ContestID:   fmt.Sprintf("%d", round),
			StartDate:   fmt.Sprintf("2026-%02d-%02d", 1+c%12, 1+c%28),
			Results:     results,
		}
	}
	return payloads
}

// generateRatingUpdates produces one update_ratings payload per judge for
// the given roster.
func generateRatingUpdates(roster []model.Participant) []model.Payload {
	judges := judge.Default()
	payloads := make([]model.Payload, 0, len(judges))
	for _, j := range judges {
		changes := make([]model.RatingChange, 0, len(roster))
		for _, p := range roster {
			handle := p.Handle(j)
			if handle == "" {
				continue
			}
			old := float64(ratingBase + randomInt(ratingSpread))
			changes = append(changes, model.RatingChange{
				Handle:    handle,
				OldRating: old,
				NewRating: old + float64(randomInt(2*deltaSpread)-deltaSpread),
			})
		}
		payloads = append(payloads, model.Payload{
			Action:      model.ActionUpdateRatings,
			OnlineJudge: j,
			Ratings:     changes,
		})
	}
	return payloads
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
