package leaderboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/okian/pressdetective/internal/domain/leaderboard"
	"github.com/okian/pressdetective/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeBoard struct {
	mu     sync.Mutex
	status int
	body   string
}

func (f *fakeBoard) set(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

func (f *fakeBoard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/leaderboard" {
		http.NotFound(w, r)
		return
	}
	f.mu.Lock()
	status, body := f.status, f.body
	f.mu.Unlock()
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestStaticProvider(t *testing.T) {
	Convey("Given a static provider", t, func() {
		seed := []model.LeaderboardEntry{{Publisher: "X", AvgScore: 0.9}, {Publisher: "Y", AvgScore: 0.1}}
		p := leaderboard.NewStaticProvider(seed)
		ctx := context.Background()

		So(p.Policy(), ShouldEqual, leaderboard.PolicyStatic)

		Convey("When loading twice", func() {
			first, err1 := p.Load(ctx)
			first[0].Publisher = "mutated"
			second, err2 := p.Load(ctx)

			Convey("Then both loads return the seed in input order", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, seed)
			})
		})

		Convey("When the caller mutates the seed slice after construction", func() {
			seed[1].AvgScore = 0.99
			got, _ := p.Load(ctx)

			Convey("Then the provider is unaffected", func() {
				So(got[1].AvgScore, ShouldEqual, 0.1)
			})
		})
	})

	Convey("Given the demo provider", t, func() {
		got, err := leaderboard.NewDemoProvider().Load(context.Background())

		Convey("Then it has the twenty demo publishers", func() {
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 20)
			So(got[0], ShouldResemble, model.LeaderboardEntry{Publisher: "조선일보", AvgScore: 0.913})
			So(got[19].Publisher, ShouldEqual, "아이뉴스24")
		})
	})

	Convey("Given an empty static provider", t, func() {
		got, err := leaderboard.NewStaticProvider(nil).Load(context.Background())
		So(err, ShouldBeNil)
		So(got, ShouldNotBeNil)
		So(got, ShouldBeEmpty)
	})
}

func TestRemoteProvider(t *testing.T) {
	Convey("Given a backend leaderboard endpoint", t, func() {
		board := &fakeBoard{status: http.StatusOK, body: `[{"publisher":"Y","avg_score":0.1},{"publisher":"X","avg_score":0.9}]`}
		srv := httptest.NewServer(board)
		defer srv.Close()

		p := leaderboard.NewRemoteProvider(srv.URL+"/leaderboard", srv.Client())
		So(p.Policy(), ShouldEqual, leaderboard.PolicyDynamic)

		Convey("When it returns entries", func() {
			got, err := p.Load(context.Background())

			Convey("Then server order is kept, not re-sorted", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, []model.LeaderboardEntry{
					{Publisher: "Y", AvgScore: 0.1},
					{Publisher: "X", AvgScore: 0.9},
				})
			})
		})

		Convey("When it returns an empty array", func() {
			board.set(http.StatusOK, `[]`)
			got, err := p.Load(context.Background())
			So(err, ShouldBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("When it returns null", func() {
			board.set(http.StatusOK, `null`)
			got, err := p.Load(context.Background())
			So(err, ShouldBeNil)
			So(got, ShouldNotBeNil)
		})

		Convey("When it fails", func() {
			board.set(http.StatusServiceUnavailable, `{}`)
			_, err := p.Load(context.Background())

			Convey("Then ErrFetch is returned", func() {
				So(errors.Is(err, leaderboard.ErrFetch), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "503")
			})
		})

		Convey("When the body is not a list", func() {
			board.set(http.StatusOK, `{"publisher":"X"}`)
			_, err := p.Load(context.Background())
			So(errors.Is(err, leaderboard.ErrFetch), ShouldBeTrue)
		})
	})
}

func TestSeed(t *testing.T) {
	Convey("Given YAML seeds", t, func() {
		Convey("When the seed is well formed", func() {
			got, err := leaderboard.DecodeSeed(strings.NewReader(`
publishers:
  - publisher: 한겨레
    avg_score: 0.878
  - publisher: " KBS "
    avg_score: 0.812
`))
			Convey("Then entries keep file order and trimmed names", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, []model.LeaderboardEntry{
					{Publisher: "한겨레", AvgScore: 0.878},
					{Publisher: "KBS", AvgScore: 0.812},
				})
			})
		})

		Convey("When the seed is empty", func() {
			got, err := leaderboard.DecodeSeed(strings.NewReader(""))
			So(err, ShouldBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("When a score is out of range", func() {
			_, err := leaderboard.DecodeSeed(strings.NewReader("publishers:\n  - publisher: X\n    avg_score: 1.5\n"))
			So(errors.Is(err, leaderboard.ErrBadSeed), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "outside [0,1]")
		})

		Convey("When a publisher is missing", func() {
			_, err := leaderboard.DecodeSeed(strings.NewReader("publishers:\n  - avg_score: 0.5\n"))
			So(errors.Is(err, leaderboard.ErrBadSeed), ShouldBeTrue)
		})

		Convey("When the YAML is malformed", func() {
			_, err := leaderboard.DecodeSeed(strings.NewReader("publishers: [\n"))
			So(errors.Is(err, leaderboard.ErrBadSeed), ShouldBeTrue)
		})
	})

	Convey("Given seed files on disk", t, func() {
		dir := t.TempDir()

		Convey("When the file exists", func() {
			path := filepath.Join(dir, "seed.yaml")
			So(os.WriteFile(path, []byte("publishers:\n  - publisher: YTN\n    avg_score: 0.761\n"), 0o600), ShouldBeNil)
			got, err := leaderboard.LoadSeedFile(path)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []model.LeaderboardEntry{{Publisher: "YTN", AvgScore: 0.761}})
		})

		Convey("When the file is missing", func() {
			_, err := leaderboard.LoadSeedFile(filepath.Join(dir, "nope.yaml"))
			So(errors.Is(err, leaderboard.ErrNotFound), ShouldBeTrue)
		})
	})
}
