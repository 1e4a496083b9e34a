package agh

import (
	"context"
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

// TimestampLayout is local time without offset, truncated to seconds.
const TimestampLayout = "2006-01-02T15:04:05"

const (
	DefaultTimeout   = 10 * time.Second
	maxErrorBodySize = 4 << 10
)

// Client submits station reports to the AGH infrastructure ingestion endpoint.
type Client struct {
	URL        string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

var _ ports.ReportSink = Client{}

func (c Client) Submit(ctx context.Context, envelope ports.Envelope) error {
	if err := validateURL(c.URL); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	form := url.Values{}
	form.Set("label", envelope.Label)
	form.Set("timestamp", FormatTimestamp(envelope.Timestamp))
	form.Set("data", envelope.Data)

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, c.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: create request: %w", domain.ErrDelivery, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("token", c.Token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if detail := strings.TrimSpace(string(body)); detail != "" {
			return fmt.Errorf("%w: status code %d: %s", domain.ErrDelivery, resp.StatusCode, detail)
		}
		return fmt.Errorf("%w: status code %d", domain.ErrDelivery, resp.StatusCode)
	}

	return nil
}

func FormatTimestamp(t time.Time) string {
	return t.Local().Truncate(time.Second).Format(TimestampLayout)
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func validateURL(raw string) error {
	if raw == "" {
		return errors.New("destination url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse destination url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("destination url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("destination url host is required")
	}
	return nil
}
