package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	service "github.com/okian/pressdetective/internal/app"
	"github.com/okian/pressdetective/internal/domain/analysis"
	"github.com/okian/pressdetective/internal/domain/leaderboard"
	"github.com/okian/pressdetective/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// backend imitates the external analyze and leaderboard endpoints.
type backend struct {
	mu          sync.Mutex
	analyzeCode int
	board       []model.LeaderboardEntry
	boardCode   int
	analyzed    []string
}

func newBackend() *backend {
	return &backend{analyzeCode: http.StatusOK, boardCode: http.StatusOK}
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.URL.Path {
	case "/analyze":
		var req model.AnalysisRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.analyzed = append(b.analyzed, req.URL)
		if b.analyzeCode != http.StatusOK {
			w.WriteHeader(b.analyzeCode)
			return
		}
		_ = json.NewEncoder(w).Encode(model.AnalysisResult{
			Title: "제목", SimilarityScore: 0.8123, Label: "유사", Summary: "요약",
		})
	case "/leaderboard":
		if b.boardCode != http.StatusOK {
			w.WriteHeader(b.boardCode)
			return
		}
		_ = json.NewEncoder(w).Encode(b.board)
	default:
		http.NotFound(w, r)
	}
}

func (b *backend) setBoard(code int, entries []model.LeaderboardEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.boardCode, b.board = code, entries
}

func (b *backend) setAnalyzeCode(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.analyzeCode = code
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service talking to a real HTTP backend", t, func() {
		be := newBackend()
		be.setBoard(http.StatusOK, []model.LeaderboardEntry{{Publisher: "한겨레", AvgScore: 0.878}})
		srv := httptest.NewServer(be)
		defer srv.Close()

		svc := service.New(
			service.WithAnalyzer(analysis.NewClient(srv.URL+"/analyze",
				analysis.WithHTTPClient(srv.Client()),
				analysis.WithTimeout(5*time.Second),
			)),
			service.WithLeaderboard(leaderboard.NewRemoteProvider(srv.URL+"/leaderboard", srv.Client())),
		)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When an article is analyzed end-to-end", func() {
			out := svc.Submit(ctx, "visitor", "https://news.example/a")

			Convey("Then the result and the fetched board reach the session", func() {
				So(out.OK(), ShouldBeTrue)
				So(out.Result.Title, ShouldEqual, "제목")
				page, err := svc.Page(ctx, "visitor")
				So(err, ShouldBeNil)
				So(page.Result.Score, ShouldEqual, "0.8123")
				So(len(page.Leaderboard), ShouldEqual, 1)
				So(page.Leaderboard[0].Publisher, ShouldEqual, "한겨레")
				So(page.Leaderboard[0].Tier, ShouldEqual, "high")
			})
		})

		Convey("When the leaderboard endpoint breaks after a success", func() {
			svc.Submit(ctx, "visitor", "https://news.example/a")
			be.setBoard(http.StatusInternalServerError, nil)
			out := svc.Submit(ctx, "visitor", "https://news.example/b")

			Convey("Then the outcome is successful and the board is kept", func() {
				So(out.OK(), ShouldBeTrue)
				So(out.LeaderboardErr, ShouldNotBeNil)
				board, _ := svc.Leaderboard(ctx, "visitor")
				So(board, ShouldResemble, []model.LeaderboardEntry{{Publisher: "한겨레", AvgScore: 0.878}})
			})
		})

		Convey("When the analyze endpoint fails", func() {
			be.setAnalyzeCode(http.StatusBadGateway)
			out := svc.Submit(ctx, "visitor", "https://news.example/c")

			Convey("Then the generic notice is raised", func() {
				So(out.Notice, ShouldEqual, model.NoticeAnalyzeFailed)
				So(out.Result, ShouldBeNil)
			})
		})
	})
}
