package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pensup/pensup/internal/models"
)

const creatorSelect = "id,name,tags,bio,avatar,background,works_count,followers_count,subscribers_count,following_count,works"

// creatorRow is the wire shape of one profile row; counters arrive as flat
// columns and are folded into models.Counts.
type creatorRow struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Tags             string               `json:"tags"`
	Bio              string               `json:"bio"`
	Avatar           string               `json:"avatar"`
	Background       string               `json:"background"`
	WorksCount       uint                 `json:"works_count"`
	FollowersCount   uint                 `json:"followers_count"`
	SubscribersCount uint                 `json:"subscribers_count"`
	FollowingCount   uint                 `json:"following_count"`
	Works            []models.CreatorWork `json:"works"`
}

func (r creatorRow) toProfile() *models.CreatorProfile {
	works := r.Works
	if works == nil {
		works = []models.CreatorWork{}
	}
	return &models.CreatorProfile{
		ID:         r.ID,
		Name:       r.Name,
		Tags:       r.Tags,
		Bio:        r.Bio,
		Avatar:     r.Avatar,
		Background: r.Background,
		Counts: models.Counts{
			Works:       r.WorksCount,
			Followers:   r.FollowersCount,
			Subscribers: r.SubscribersCount,
			Following:   r.FollowingCount,
		},
		Works: works,
	}
}

// HTTPClient queries a REST endpoint exposing a creator_profiles table.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient returns a Client for the endpoint at baseURL. When baseURL
// is empty the endpoint is considered unconfigured and every call reports
// ErrUnavailable, which the resolver folds into its local fallback.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, apiKey: apiKey, client: &http.Client{}}
}

func (c *HTTPClient) FetchCreator(ctx context.Context, id string) (*models.CreatorProfile, error) {
	if c.baseURL == "" || id == "" {
		return nil, ErrUnavailable
	}

	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("select", creatorSelect)
	query.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/rest/v1/creator_profiles?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	c.setHeaders(req)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %s", ErrUnavailable, res.Status)
	}

	var rows []creatorRow
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return rows[0].toProfile(), nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	if c.baseURL == "" {
		return ErrUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	c.setHeaders(req)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	res.Body.Close()

	if res.StatusCode >= 500 {
		return fmt.Errorf("%w: status %s", ErrUnavailable, res.Status)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
