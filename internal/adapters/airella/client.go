package airella

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
)

const maxResponseBytes = 1 << 20

const (
	loginPath        = "/auth/login"
	refreshPath      = "/auth/refresh-token"
	userStationsPath = "/user/stations"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to the Airella REST API.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.SourceAPI = Client{}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken json.RawMessage `json:"refreshToken"`
}

type tokenResponse struct {
	Data struct {
		AccessToken  json.RawMessage `json:"accessToken"`
		RefreshToken json.RawMessage `json:"refreshToken"`
	} `json:"data"`
}

type stationsResponse struct {
	Data []struct {
		ID flexString `json:"id"`
	} `json:"data"`
}

type stationResponse struct {
	Data struct {
		Address  *addressPayload  `json:"address"`
		Location *locationPayload `json:"location"`
	} `json:"data"`
}

type addressPayload struct {
	Country flexString `json:"country"`
	City    flexString `json:"city"`
	Street  flexString `json:"street"`
	Number  flexString `json:"number"`
}

type locationPayload struct {
	Latitude  any `json:"latitude"`
	Longitude any `json:"longitude"`
}

type seriesResponse struct {
	Data struct {
		Values []struct {
			Timestamp string `json:"timestamp"`
			Value     any    `json:"value"`
		} `json:"values"`
	} `json:"data"`
}

func (c Client) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return domain.Session{}, fmt.Errorf("%w: login: email and password are required", domain.ErrAuth)
	}

	var payload tokenResponse
	status, err := c.roundTrip(ctx, http.MethodPost, loginPath, "", loginRequest{Email: creds.Email, Password: creds.Password}, &payload)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: login: %w", domain.ErrAuth, err)
	}
	if status != http.StatusOK {
		return domain.Session{}, fmt.Errorf("%w: login: status %d", domain.ErrAuth, status)
	}

	access, err := tokenValue(payload.Data.AccessToken)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: login response: %w", domain.ErrAuth, err)
	}
	refresh := strings.TrimSpace(string(payload.Data.RefreshToken))
	if refresh == "" || refresh == "null" {
		return domain.Session{}, fmt.Errorf("%w: login response missing refresh token", domain.ErrAuth)
	}

	return domain.Session{AccessToken: access, RefreshToken: refresh}, nil
}

func (c Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	raw := json.RawMessage(refreshToken)
	if !json.Valid(raw) {
		// Plain tokens are sent as JSON strings.
		encoded, err := json.Marshal(refreshToken)
		if err != nil {
			return "", fmt.Errorf("%w: encode refresh token: %w", domain.ErrAuth, err)
		}
		raw = encoded
	}

	var payload tokenResponse
	status, err := c.roundTrip(ctx, http.MethodPost, refreshPath, "", refreshRequest{RefreshToken: raw}, &payload)
	if err != nil {
		return "", fmt.Errorf("%w: refresh token: %w", domain.ErrAuth, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: refresh token: status %d", domain.ErrAuth, status)
	}

	access, err := tokenValue(payload.Data.AccessToken)
	if err != nil {
		return "", fmt.Errorf("%w: refresh response: %w", domain.ErrAuth, err)
	}

	return access, nil
}

func (c Client) ListStations(ctx context.Context, accessToken string) ([]domain.StationID, error) {
	var payload stationsResponse
	if err := c.read(ctx, userStationsPath, accessToken, &payload); err != nil {
		return nil, err
	}

	ids := make([]domain.StationID, 0, len(payload.Data))
	for _, station := range payload.Data {
		if station.ID == "" {
			continue
		}
		ids = append(ids, domain.StationID(station.ID))
	}

	return ids, nil
}

func (c Client) GetStation(ctx context.Context, accessToken string, id domain.StationID) (domain.StationInfo, error) {
	var payload stationResponse
	if err := c.read(ctx, stationPath(id), accessToken, &payload); err != nil {
		return domain.StationInfo{}, err
	}

	info := domain.StationInfo{ID: id}
	if addr := payload.Data.Address; addr != nil {
		info.Address = &domain.Address{
			Country: string(addr.Country),
			City:    string(addr.City),
			Street:  string(addr.Street),
			Number:  string(addr.Number),
		}
	}
	if loc := payload.Data.Location; loc != nil {
		info.Location = &domain.Location{Latitude: loc.Latitude, Longitude: loc.Longitude}
	}

	return info, nil
}

func (c Client) LatestSensorValue(ctx context.Context, accessToken string, id domain.StationID, metric domain.Metric) (*domain.Reading, error) {
	return c.latest(ctx, stationPath(id)+"/sensors/"+url.PathEscape(string(metric)), accessToken)
}

func (c Client) LatestStatisticValue(ctx context.Context, accessToken string, id domain.StationID, metric domain.Metric) (*domain.Reading, error) {
	return c.latest(ctx, stationPath(id)+"/statistics/"+url.PathEscape(string(metric)), accessToken)
}

// latest returns the first value of a series, newest first, or nil when the
// series is empty.
func (c Client) latest(ctx context.Context, path string, accessToken string) (*domain.Reading, error) {
	var payload seriesResponse
	if err := c.read(ctx, path, accessToken, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data.Values) == 0 {
		return nil, nil
	}

	first := payload.Data.Values[0]
	return &domain.Reading{Timestamp: first.Timestamp, Value: first.Value}, nil
}

func (c Client) read(ctx context.Context, path string, accessToken string, out any) error {
	status, err := c.roundTrip(ctx, http.MethodGet, path, accessToken, nil, out)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", domain.ErrFetch, path, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: GET %s: status %d", domain.ErrFetch, path, status)
	}
	return nil
}

// roundTrip sends a JSON request and decodes a 2xx body into out. Non-2xx
// statuses are returned without error so callers can map them.
func (c Client) roundTrip(ctx context.Context, method string, path string, accessToken string, payload any, out any) (int, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return 0, err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return resp.StatusCode, nil
	}

	if out != nil {
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func stationPath(id domain.StationID) string {
	return "/stations/" + url.PathEscape(string(id))
}

// tokenValue accepts both {"token": "..."} objects and bare strings.
func tokenValue(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", errors.New("missing access token")
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		if plain == "" {
			return "", errors.New("empty access token")
		}
		return plain, nil
	}

	var wrapped struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return "", fmt.Errorf("decode access token: %w", err)
	}
	if wrapped.Token == "" {
		return "", errors.New("empty access token")
	}

	return wrapped.Token, nil
}

// buildAPIURL appends path to the base URL, keeping any base path prefix.
func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}

// flexString decodes JSON strings and numbers alike.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = flexString(num.String())
	return nil
}
