package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	BaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	FootballNFL = "football/nfl"

	// DefaultTimeout bounds every request; there are no retries.
	DefaultTimeout = 30 * time.Second

	userAgent = "nfl-playoff-tracker/1.0"
)

// Client handles ESPN site API requests for the NFL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
}

// New creates a client against baseURL. An empty baseURL uses BaseURL, a
// non-positive timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration, log *logrus.Entry) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = BaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("component", "espn-client")
	log.WithField("base_url", baseURL).Debug("client created")

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// FetchScoreboard fetches the slate described by q.
func (c *Client) FetchScoreboard(ctx context.Context, q ScoreboardQuery) (map[string]interface{}, error) {
	params := url.Values{}
	if q.Dates != "" {
		params.Set("dates", q.Dates)
	}
	if q.SeasonType > 0 {
		params.Set("seasontype", strconv.Itoa(q.SeasonType))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	endpoint := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, FootballNFL)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return c.fetch(ctx, endpoint)
}

// FetchGameSummary fetches the box score and play-by-play for one event.
func (c *Client) FetchGameSummary(ctx context.Context, gameID string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, FootballNFL, url.QueryEscape(gameID))
	return c.fetch(ctx, endpoint)
}

func (c *Client) fetch(ctx context.Context, endpoint string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	c.log.WithField("url", endpoint).Debug("GET")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ESPN returned status %d: %s", resp.StatusCode, snippet(body))
	}

	// ESPN answers blocked or unknown routes with an HTML page
	if len(body) > 0 && body[0] == '<' {
		return nil, fmt.Errorf("ESPN returned HTML error page: %s", snippet(body))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w (body: %s)", err, snippet(body))
	}

	return result, nil
}

func snippet(body []byte) string {
	return string(body[:min(len(body), 200)])
}
