// Package qbreader provides a client for the qbreader.org question API
package qbreader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/qbreader/go-qbreader/internal/common"
	"github.com/qbreader/go-qbreader/internal/interfaces"
	"github.com/qbreader/go-qbreader/internal/models"
)

const (
	DefaultBaseURL   = "https://www.qbreader.org/api"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the QuestionClient interface.
// No API key is required — the qbreader API is public.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new qbreader API client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-200 response from the API
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qbreader API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request and decodes the JSON body into
// result. Decode failures propagate wrapped, never masked.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", c.baseURL+path).Msg("qbreader API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", path).Dur("elapsed", elapsed).Msg("qbreader API request failed")
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn().Str("endpoint", path).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("qbreader API non-OK response")
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Info().Str("endpoint", path).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("qbreader API call")

	return nil
}

// Query searches the question database.
// Original API doc at https://www.qbreader.org/api-docs/query.
func (c *Client) Query(ctx context.Context, opts ...interfaces.QueryOption) (*models.QueryResponse, error) {
	p := &interfaces.QueryParams{
		QuestionType:     interfaces.QuestionTypeAll,
		SearchType:       interfaces.SearchTypeAll,
		MaxReturnLength:  25,
		TossupPagination: 1,
		BonusPagination:  1,
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := validateQueryParams(p); err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := c.get(ctx, "/query", queryValues(p), &payload); err != nil {
		return nil, err
	}

	return models.QueryResponseFromJSON(payload)
}

// RandomTossups retrieves random tossups from the database.
// Original API doc at https://www.qbreader.org/api-docs/random-tossup.
func (c *Client) RandomTossups(ctx context.Context, opts ...interfaces.RandomOption) ([]*models.Tossup, error) {
	p := defaultRandomParams()
	for _, opt := range opts {
		opt(p)
	}
	if err := validateRandomParams(p); err != nil {
		return nil, err
	}

	var payload struct {
		Tossups []map[string]any `json:"tossups"`
	}
	if err := c.get(ctx, "/random-tossup", randomValues(p, false), &payload); err != nil {
		return nil, err
	}

	tossups := make([]*models.Tossup, len(payload.Tossups))
	for i, record := range payload.Tossups {
		tossup, err := models.TossupFromJSON(record)
		if err != nil {
			return nil, fmt.Errorf("tossup %d: %w", i, err)
		}
		tossups[i] = tossup
	}
	return tossups, nil
}

// RandomBonuses retrieves random bonuses from the database.
// Original API doc at https://www.qbreader.org/api-docs/random-bonus.
func (c *Client) RandomBonuses(ctx context.Context, opts ...interfaces.RandomOption) ([]*models.Bonus, error) {
	p := defaultRandomParams()
	for _, opt := range opts {
		opt(p)
	}
	if err := validateRandomParams(p); err != nil {
		return nil, err
	}

	var payload struct {
		Bonuses []map[string]any `json:"bonuses"`
	}
	if err := c.get(ctx, "/random-bonus", randomValues(p, true), &payload); err != nil {
		return nil, err
	}

	bonuses := make([]*models.Bonus, len(payload.Bonuses))
	for i, record := range payload.Bonuses {
		bonus, err := models.BonusFromJSON(record)
		if err != nil {
			return nil, fmt.Errorf("bonus %d: %w", i, err)
		}
		bonuses[i] = bonus
	}
	return bonuses, nil
}

// RandomName retrieves a random adjective-noun pair usable as a player name.
// Original API doc at https://www.qbreader.org/api-docs/random-name.
func (c *Client) RandomName(ctx context.Context) (string, error) {
	var payload struct {
		RandomName string `json:"randomName"`
	}
	if err := c.get(ctx, "/random-name", nil, &payload); err != nil {
		return "", err
	}
	return payload.RandomName, nil
}

// Packet retrieves all questions of one packet, tossups and bonuses.
func (c *Client) Packet(ctx context.Context, setName string, packetNumber int) (*models.Packet, error) {
	var payload map[string]any
	if err := c.get(ctx, "/packet", packetValues(setName, packetNumber), &payload); err != nil {
		return nil, err
	}
	return models.PacketFromJSON(payload)
}

// PacketTossups retrieves only a packet's tossups. Roughly twice as fast as
// Packet when the bonuses are not needed.
func (c *Client) PacketTossups(ctx context.Context, setName string, packetNumber int) ([]*models.Tossup, error) {
	var payload struct {
		Tossups []map[string]any `json:"tossups"`
	}
	if err := c.get(ctx, "/packet-tossups", packetValues(setName, packetNumber), &payload); err != nil {
		return nil, err
	}

	tossups := make([]*models.Tossup, len(payload.Tossups))
	for i, record := range payload.Tossups {
		tossup, err := models.TossupFromJSON(record)
		if err != nil {
			return nil, fmt.Errorf("tossup %d: %w", i, err)
		}
		tossups[i] = tossup
	}
	return tossups, nil
}

// PacketBonuses retrieves only a packet's bonuses.
func (c *Client) PacketBonuses(ctx context.Context, setName string, packetNumber int) ([]*models.Bonus, error) {
	var payload struct {
		Bonuses []map[string]any `json:"bonuses"`
	}
	if err := c.get(ctx, "/packet-bonuses", packetValues(setName, packetNumber), &payload); err != nil {
		return nil, err
	}

	bonuses := make([]*models.Bonus, len(payload.Bonuses))
	for i, record := range payload.Bonuses {
		bonus, err := models.BonusFromJSON(record)
		if err != nil {
			return nil, fmt.Errorf("bonus %d: %w", i, err)
		}
		bonuses[i] = bonus
	}
	return bonuses, nil
}

// NumPackets retrieves the number of packets in a set.
func (c *Client) NumPackets(ctx context.Context, setName string) (int, error) {
	params := url.Values{}
	params.Set("setName", setName)

	var payload struct {
		NumPackets int `json:"numPackets"`
	}
	if err := c.get(ctx, "/num-packets", params, &payload); err != nil {
		return 0, err
	}
	return payload.NumPackets, nil
}

// SetList retrieves the names of all question sets, sorted by the service in
// reverse alphanumeric order.
// Original API doc at https://www.qbreader.org/api-docs/set-list.
func (c *Client) SetList(ctx context.Context) ([]string, error) {
	var payload struct {
		SetList []string `json:"setList"`
	}
	if err := c.get(ctx, "/set-list", nil, &payload); err != nil {
		return nil, err
	}
	return payload.SetList, nil
}

// CheckAnswer judges a given answer against an answer line.
func (c *Client) CheckAnswer(ctx context.Context, answerline, givenAnswer string) (*models.AnswerCheck, error) {
	params := url.Values{}
	params.Set("answerline", answerline)
	params.Set("givenAnswer", givenAnswer)

	var payload []any
	if err := c.get(ctx, "/check-answer", params, &payload); err != nil {
		return nil, err
	}
	return models.AnswerCheckFromJSON(payload)
}

func defaultRandomParams() *interfaces.RandomParams {
	return &interfaces.RandomParams{
		Number:  1,
		MinYear: 2010,
		MaxYear: 2023,
	}
}

func packetValues(setName string, packetNumber int) url.Values {
	params := url.Values{}
	params.Set("setName", setName)
	params.Set("packetNumber", strconv.Itoa(packetNumber))
	return params
}

// Ensure Client implements QuestionClient
var _ interfaces.QuestionClient = (*Client)(nil)
