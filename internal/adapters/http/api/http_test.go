package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/http/api"
	service "github.com/AsMaNick/RatingCalculator/internal/app"
	"github.com/AsMaNick/RatingCalculator/internal/board"
	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDependencies struct {
	outcome   api.Outcome
	handleErr error
	handled   []model.Payload

	topN    []api.Entry
	topNErr error
	rank    api.Entry
	rankErr error
}

func (m *mockDependencies) Handle(ctx context.Context, p model.Payload) (api.Outcome, error) {
	if m.handleErr != nil {
		return "", m.handleErr
	}
	m.handled = append(m.handled, p)
	return m.outcome, nil
}

func (m *mockDependencies) TopN(ctx context.Context, n int) ([]api.Entry, error) {
	if m.topNErr != nil {
		return nil, m.topNErr
	}
	if n > len(m.topN) {
		return m.topN, nil
	}
	return m.topN[:n], nil
}

func (m *mockDependencies) Rank(ctx context.Context, j judge.Judge, handle string) (api.Entry, error) {
	if m.rankErr != nil {
		return api.Entry{}, m.rankErr
	}
	return m.rank, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps *mockDependencies) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}}, 100)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func webhookBody() string {
	return `{
		"action": "add_standings",
		"sheet_name": "Round 1",
		"online_judge": "codeforces",
		"contest_id": "101",
		"start_date": "2026-02-01",
		"results": [
			{"place": 1, "user": {"name": "Alice", "codeforces_handle": "alice_cf"}, "points": 100, "is_official": true}
		]
	}`
}

func TestWebhookEndpoint(t *testing.T) {
	Convey("Given the webhook endpoint", t, func() {
		deps := &mockDependencies{outcome: service.OutcomeProcessed}
		mux := newMux(deps)

		Convey("When posting a valid payload", func() {
			req := httptest.NewRequest("POST", "/webhook", strings.NewReader(webhookBody()))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the payload should be dispatched and acknowledged", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.handled, ShouldHaveLength, 1)
				So(deps.handled[0].SheetName, ShouldEqual, "Round 1")

				var ack map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&ack), ShouldBeNil)
				So(ack["status"], ShouldEqual, "processed")
				So(ack["duplicate"], ShouldEqual, false)
			})
		})

		Convey("When the contest was already processed", func() {
			deps.outcome = service.OutcomeDuplicate
			req := httptest.NewRequest("POST", "/webhook", strings.NewReader(webhookBody()))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the response should flag the duplicate", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var ack map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&ack), ShouldBeNil)
				So(ack["duplicate"], ShouldEqual, true)
			})
		})

		Convey("When the body is not JSON", func() {
			req := httptest.NewRequest("POST", "/webhook", strings.NewReader("not json"))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(deps.handled, ShouldBeEmpty)
		})

		Convey("When the payload fails validation", func() {
			body := `{"action": "add_standings", "online_judge": "codeforces"}`
			req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the judge is unknown", func() {
			body := `{"action": "add_standings", "online_judge": "topcoder", "sheet_name": "R", "contest_id": "1", "results": [{"place": 1}]}`
			req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the board lock times out", func() {
			deps.handleErr = service.ErrLockTimeout
			req := httptest.NewRequest("POST", "/webhook", strings.NewReader(webhookBody()))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the caller should be told to retry later", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["code"], ShouldEqual, "busy")
			})
		})

		Convey("When the method is not POST", func() {
			req := httptest.NewRequest("GET", "/webhook", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestLeaderboardEndpoint(t *testing.T) {
	Convey("Given the leaderboard endpoint", t, func() {
		deps := &mockDependencies{
			topN: []api.Entry{
				{Place: 1, Name: "Alice", Total: 120.5},
				{Place: 2, Name: "Bob", Total: 90},
			},
		}
		mux := newMux(deps)

		Convey("When requesting the top entries", func() {
			req := httptest.NewRequest("GET", "/leaderboard?limit=2", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then ranked entries should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var entries []api.Entry
				So(json.NewDecoder(w.Body).Decode(&entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Name, ShouldEqual, "Alice")
			})
		})

		Convey("When the limit is missing", func() {
			req := httptest.NewRequest("GET", "/leaderboard", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit exceeds the cap", func() {
			req := httptest.NewRequest("GET", "/leaderboard?limit=1000", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			var resp map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
			So(resp["code"], ShouldEqual, "limit_exceeded")
		})
	})
}

func TestRankEndpoint(t *testing.T) {
	Convey("Given the rank endpoint", t, func() {
		deps := &mockDependencies{
			rank: api.Entry{Place: 2, Name: "Bob", Total: 90},
		}
		mux := newMux(deps)

		Convey("When requesting a known handle", func() {
			req := httptest.NewRequest("GET", "/rank/bob_cf", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the entry should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var e api.Entry
				So(json.NewDecoder(w.Body).Decode(&e), ShouldBeNil)
				So(e.Name, ShouldEqual, "Bob")
			})
		})

		Convey("When passing an explicit judge", func() {
			req := httptest.NewRequest("GET", "/rank/bob_at?judge=atcoder", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When the judge parameter is invalid", func() {
			req := httptest.NewRequest("GET", "/rank/bob_cf?judge=topcoder", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the handle is unknown", func() {
			deps.rankErr = board.ErrHandleNotFound
			req := httptest.NewRequest("GET", "/rank/nobody", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the path has no handle", func() {
			req := httptest.NewRequest("GET", "/rank/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	Convey("Given the operational endpoints", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("Then stats should serve the provider's map", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			var stats map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})

		Convey("Then healthz should expose the metrics registry", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "rating_board")
		})
	})
}
