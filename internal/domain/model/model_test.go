package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/pressdetective/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAnalysisResultDecoding(t *testing.T) {
	Convey("Given a backend response with extra fields", t, func() {
		body := `{"title":"A","body":"long text","summary":"S","similarity_score":0.5,"label":"L","threshold":0.7,"publisher":"KBS"}`

		var r model.AnalysisResult
		err := json.Unmarshal([]byte(body), &r)

		Convey("Then the known fields are decoded and the rest ignored", func() {
			So(err, ShouldBeNil)
			So(r.Title, ShouldEqual, "A")
			So(r.SimilarityScore, ShouldEqual, 0.5)
			So(r.Label, ShouldEqual, "L")
			So(r.Summary, ShouldEqual, "S")
			So(r.Publisher, ShouldEqual, "KBS")
			So(r.Threshold, ShouldNotBeNil)
			So(*r.Threshold, ShouldEqual, 0.7)
		})
	})

	Convey("Given a minimal backend response", t, func() {
		var r model.AnalysisResult
		So(json.Unmarshal([]byte(`{"title":"A","similarity_score":1,"label":"L","summary":"S"}`), &r), ShouldBeNil)

		Convey("Then optional fields stay empty", func() {
			So(r.Publisher, ShouldBeEmpty)
			So(r.Threshold, ShouldBeNil)
		})
	})
}

func TestOutcome(t *testing.T) {
	Convey("Given outcomes", t, func() {
		So(model.Outcome{Result: &model.AnalysisResult{}}.OK(), ShouldBeTrue)
		So(model.Outcome{Notice: model.NoticeEmptyURL}.OK(), ShouldBeFalse)
		So(model.Outcome{Result: &model.AnalysisResult{}, Err: errors.New("x")}.OK(), ShouldBeFalse)
	})
}

func TestCloneEntries(t *testing.T) {
	Convey("Given a leaderboard", t, func() {
		in := []model.LeaderboardEntry{{Publisher: "X", AvgScore: 0.9}, {Publisher: "Y", AvgScore: 0.1}}
		out := model.CloneEntries(in)

		Convey("Then the copy keeps order and does not alias", func() {
			So(out, ShouldResemble, in)
			out[0].Publisher = "Z"
			So(in[0].Publisher, ShouldEqual, "X")
		})

		Convey("And nil stays nil", func() {
			So(model.CloneEntries(nil), ShouldBeNil)
		})
	})
}
