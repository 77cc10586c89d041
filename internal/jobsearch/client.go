// Package jobsearch queries the Adzuna search API for live job listings.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.adzuna.com"
	resultsPerPage = 20
)

// Listing is one job result.
type Listing struct {
	Title       string `json:"title"`
	Employer    string `json:"employer"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Client calls the Adzuna jobs API.
type Client struct {
	appID   string
	appKey  string
	country string
	baseURL string
	client  *http.Client
}

// NewClient constructs an Adzuna client. country is the two-letter market
// code used in the request path.
func NewClient(appID, appKey, country string, timeout time.Duration) *Client {
	if country == "" {
		country = "in"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		appID:   appID,
		appKey:  appKey,
		country: country,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Configured reports whether API credentials are present.
func (c *Client) Configured() bool {
	return c.appID != "" && c.appKey != ""
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Company struct {
			DisplayName string `json:"display_name"`
		} `json:"company"`
		Location struct {
			DisplayName string `json:"display_name"`
		} `json:"location"`
		RedirectURL string `json:"redirect_url"`
		Description string `json:"description"`
	} `json:"results"`
}

// Search runs a keyword/location query against the first results page.
func (c *Client) Search(ctx context.Context, what, where string) ([]Listing, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("adzuna credentials not configured")
	}

	query := url.Values{}
	query.Set("app_id", c.appID)
	query.Set("app_key", c.appKey)
	query.Set("results_per_page", fmt.Sprintf("%d", resultsPerPage))
	if what = strings.TrimSpace(what); what != "" {
		query.Set("what", what)
	}
	if where = strings.TrimSpace(where); where != "" {
		query.Set("where", where)
	}

	endpoint := fmt.Sprintf("%s/v1/api/jobs/%s/search/1?%s", c.baseURL, c.country, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode adzuna response: %w", err)
	}

	listings := make([]Listing, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		listings = append(listings, Listing{
			Title:       result.Title,
			Employer:    result.Company.DisplayName,
			Location:    result.Location.DisplayName,
			URL:         result.RedirectURL,
			Description: result.Description,
		})
	}
	return listings, nil
}
