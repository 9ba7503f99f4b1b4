package leaderboard

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/pressdetective/internal/domain/model"
)

// seedFile is the YAML layout of a static leaderboard:
//
//	publishers:
//	  - publisher: 조선일보
//	    avg_score: 0.913
type seedFile struct {
	Publishers []seedEntry `yaml:"publishers"`
}

type seedEntry struct {
	Publisher string  `yaml:"publisher"`
	AvgScore  float64 `yaml:"avg_score"`
}

// LoadSeedFile reads a YAML seed from path.
func LoadSeedFile(path string) ([]model.LeaderboardEntry, error) {
	const op = "leaderboard.load_seed_file"
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrapKind(op, ErrNotFound, err)
		}
		return nil, wrapKind(op, ErrBadSeed, err)
	}
	defer f.Close()
	return DecodeSeed(f)
}

// DecodeSeed parses a YAML seed. Order is preserved; scores must be in [0,1].
func DecodeSeed(r io.Reader) ([]model.LeaderboardEntry, error) {
	const op = "leaderboard.decode_seed"
	var sf seedFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.LeaderboardEntry{}, nil
		}
		return nil, wrapKind(op, ErrBadSeed, err)
	}

	out := make([]model.LeaderboardEntry, 0, len(sf.Publishers))
	for i, e := range sf.Publishers {
		name := strings.TrimSpace(e.Publisher)
		if name == "" {
			return nil, wrapKind(op, ErrBadSeed, fmt.Errorf("entry %d: missing publisher", i))
		}
		if e.AvgScore < 0 || e.AvgScore > 1 {
			return nil, wrapKind(op, ErrBadSeed, fmt.Errorf("entry %d (%s): avg_score %v outside [0,1]", i, name, e.AvgScore))
		}
		out = append(out, model.LeaderboardEntry{Publisher: name, AvgScore: e.AvgScore})
	}
	return out, nil
}
