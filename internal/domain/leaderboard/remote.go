package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/pressdetective/internal/domain/model"
)

// RemoteProvider fetches the board from the backend on every Load.
type RemoteProvider struct {
	endpoint string
	http     *http.Client
}

var _ Provider = (*RemoteProvider)(nil)

// NewRemoteProvider creates a provider for endpoint. A nil client uses
// http.DefaultClient.
func NewRemoteProvider(endpoint string, hc *http.Client) *RemoteProvider {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &RemoteProvider{endpoint: endpoint, http: hc}
}

// Load issues GET {endpoint} and decodes the ordered entry list.
func (p *RemoteProvider) Load(ctx context.Context) ([]model.LeaderboardEntry, error) {
	const op = "leaderboard.remote_load"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, http.NoBody)
	if err != nil {
		return nil, wrapKind(op, ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, wrapKind(op, ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wrapKind(op, ErrFetch, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var entries []model.LeaderboardEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, wrapKind(op, ErrFetch, fmt.Errorf("decode response: %w", err))
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	return entries, nil
}

// Policy implements Provider.
func (p *RemoteProvider) Policy() Policy { return PolicyDynamic }
