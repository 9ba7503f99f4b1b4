package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/pressdetective/internal/domain/model"
	"github.com/okian/pressdetective/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new InMemoryStore", t, func() {
		s := session.NewInMemoryStore(session.WithMaxSize(3))
		So(s.Size(), ShouldEqual, int64(0))

		Convey("When a session is requested for the first time", func() {
			sess, created := s.GetOrCreate(ctx, "a")

			Convey("Then it is created and counted", func() {
				So(created, ShouldBeTrue)
				So(sess.ID(), ShouldEqual, "a")
				So(s.Size(), ShouldEqual, int64(1))
			})

			Convey("And asking again returns the same session", func() {
				again, created := s.GetOrCreate(ctx, "a")
				So(created, ShouldBeFalse)
				So(again, ShouldEqual, sess)
				So(s.Size(), ShouldEqual, int64(1))
			})
		})

		Convey("When the store is full", func() {
			s.GetOrCreate(ctx, "a")
			s.GetOrCreate(ctx, "b")
			s.GetOrCreate(ctx, "c")
			s.Get(ctx, "a") // a becomes most recently used
			s.GetOrCreate(ctx, "d")

			Convey("Then the least recently used session is evicted", func() {
				So(s.Size(), ShouldEqual, int64(3))
				_, okA := s.Get(ctx, "a")
				_, okB := s.Get(ctx, "b")
				_, okD := s.Get(ctx, "d")
				So(okA, ShouldBeTrue)
				So(okB, ShouldBeFalse)
				So(okD, ShouldBeTrue)
			})
		})
	})

	Convey("Given an unbounded store", t, func() {
		s := session.NewInMemoryStore(session.WithMaxSize(0))
		for i := 0; i < 100; i++ {
			s.GetOrCreate(ctx, fmt.Sprintf("s-%d", i))
		}
		So(s.Size(), ShouldEqual, int64(100))
	})

	Convey("Given create and evict hooks", t, func() {
		var evicted []string
		seed := []model.LeaderboardEntry{{Publisher: "X", AvgScore: 0.9}}
		s := session.NewInMemoryStore(
			session.WithMaxSize(1),
			session.WithOnCreate(func(sess *session.Session) { sess.SetLeaderboard(seed) }),
			session.WithOnEvict(func(sess *session.Session) { evicted = append(evicted, sess.ID()) }),
		)

		first, _ := s.GetOrCreate(ctx, "a")
		s.GetOrCreate(ctx, "b")

		Convey("Then new sessions are seeded before they are returned", func() {
			So(first.Snapshot().Leaderboard, ShouldResemble, seed)
		})

		Convey("And evictions are reported", func() {
			So(evicted, ShouldResemble, []string{"a"})
		})
	})

	Convey("Given concurrent requests for one id", t, func() {
		created := 0
		var mu sync.Mutex
		s := session.NewInMemoryStore()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := s.GetOrCreate(ctx, "same"); ok {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		Convey("Then exactly one session is created", func() {
			So(created, ShouldEqual, 1)
			So(s.Size(), ShouldEqual, int64(1))
		})
	})
}

func TestSession(t *testing.T) {
	Convey("Given a new session", t, func() {
		sess := session.New("id")
		snap := sess.Snapshot()

		Convey("Then it starts without result, notice or leaderboard rows", func() {
			So(snap.Result, ShouldBeNil)
			So(snap.Notice, ShouldEqual, model.NoticeNone)
			So(snap.Leaderboard, ShouldNotBeNil)
			So(snap.Leaderboard, ShouldBeEmpty)
			So(snap.URL, ShouldEqual, "")
		})

		Convey("When a result is stored", func() {
			sess.SetResult(model.AnalysisResult{Title: "A", SimilarityScore: 0.5})
			got := sess.Snapshot().Result
			got.Title = "mutated"

			Convey("Then snapshots do not alias the stored result", func() {
				So(sess.Snapshot().Result.Title, ShouldEqual, "A")
			})
		})

		Convey("When the leaderboard is replaced twice", func() {
			sess.SetLeaderboard([]model.LeaderboardEntry{{Publisher: "X"}, {Publisher: "Y"}})
			sess.SetLeaderboard([]model.LeaderboardEntry{{Publisher: "Z"}})

			Convey("Then only the last list remains", func() {
				So(sess.Snapshot().Leaderboard, ShouldResemble, []model.LeaderboardEntry{{Publisher: "Z"}})
				So(sess.LeaderboardVersion(), ShouldEqual, uint64(2))
			})
		})

		Convey("When a notice is taken", func() {
			sess.SetNotice(model.NoticeAnalyzeFailed)
			first := sess.TakeNotice()
			second := sess.TakeNotice()

			Convey("Then it is returned once", func() {
				So(first, ShouldEqual, model.NoticeAnalyzeFailed)
				So(second, ShouldEqual, model.NoticeNone)
			})
		})
	})
}
