package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
)

const apiBase = "https://api.github.com"

// RepoFetcher pulls public metadata for linked repositories from the GitHub
// REST API. Requests are unauthenticated, which is enough for the showcase
// volume.
type RepoFetcher struct {
	httpClient *http.Client
}

func NewRepoFetcher() *RepoFetcher {
	return &RepoFetcher{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *RepoFetcher) Fetch(ctx context.Context, repoURL string) (*dto.RepoDetails, error) {
	path, err := repoPath(repoURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"/repos/"+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errorz.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api status %d", resp.StatusCode)
	}

	var payload struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Stars       int      `json:"stargazers_count"`
		Language    string   `json:"language"`
		Topics      []string `json:"topics"`
		PushedAt    string   `json:"pushed_at"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &dto.RepoDetails{
		Name:        payload.Name,
		Description: payload.Description,
		Stars:       payload.Stars,
		Language:    payload.Language,
		Topics:      payload.Topics,
		LastUpdated: payload.PushedAt,
	}, nil
}

// repoPath extracts "owner/repo" from a github.com URL.
func repoPath(repoURL string) (string, error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", fmt.Errorf("invalid repo url: %w", err)
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return "", fmt.Errorf("unsupported repo host: %s", u.Host)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("invalid repo path: %s", u.Path)
	}
	return parts[0] + "/" + strings.TrimSuffix(parts[1], ".git"), nil
}
