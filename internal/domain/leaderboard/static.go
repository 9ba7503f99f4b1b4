package leaderboard

import (
	"context"

	"github.com/okian/pressdetective/internal/domain/model"
)

// StaticProvider serves a list fixed at construction.
type StaticProvider struct {
	entries []model.LeaderboardEntry
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider copies entries; later changes to the argument do not leak in.
func NewStaticProvider(entries []model.LeaderboardEntry) *StaticProvider {
	return &StaticProvider{entries: model.CloneEntries(entries)}
}

// NewDemoProvider serves the built-in demo publishers.
func NewDemoProvider() *StaticProvider {
	return NewStaticProvider(DemoEntries())
}

// Load returns a copy of the seeded list.
func (p *StaticProvider) Load(_ context.Context) ([]model.LeaderboardEntry, error) {
	if p.entries == nil {
		return []model.LeaderboardEntry{}, nil
	}
	return model.CloneEntries(p.entries), nil
}

// Policy implements Provider.
func (p *StaticProvider) Policy() Policy { return PolicyStatic }

// DemoEntries is the sample board used when no seed file is configured.
func DemoEntries() []model.LeaderboardEntry {
	return []model.LeaderboardEntry{
		{Publisher: "조선일보", AvgScore: 0.913},
		{Publisher: "한겨레", AvgScore: 0.878},
		{Publisher: "연합뉴스", AvgScore: 0.842},
		{Publisher: "중앙일보", AvgScore: 0.825},
		{Publisher: "KBS", AvgScore: 0.812},
		{Publisher: "MBC", AvgScore: 0.798},
		{Publisher: "SBS", AvgScore: 0.787},
		{Publisher: "서울신문", AvgScore: 0.774},
		{Publisher: "YTN", AvgScore: 0.761},
		{Publisher: "한국일보", AvgScore: 0.745},
		{Publisher: "동아일보", AvgScore: 0.733},
		{Publisher: "경향신문", AvgScore: 0.721},
		{Publisher: "매일경제", AvgScore: 0.709},
		{Publisher: "전자신문", AvgScore: 0.698},
		{Publisher: "파이낸셜뉴스", AvgScore: 0.689},
		{Publisher: "뉴스1", AvgScore: 0.673},
		{Publisher: "노컷뉴스", AvgScore: 0.662},
		{Publisher: "프레시안", AvgScore: 0.651},
		{Publisher: "ZDNet Korea", AvgScore: 0.645},
		{Publisher: "아이뉴스24", AvgScore: 0.638},
	}
}
