package fountain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/kurochkinivan/applicant_importer/internal/config"
	"github.com/kurochkinivan/applicant_importer/internal/domain"
	"github.com/sethvargo/go-retry"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const maxRetriesExceeded = "Max retries exceeded"

type createApplicantRequest struct {
	Name                        string `json:"name"`
	Email                       string `json:"email"`
	Phone                       string `json:"phone"`
	CheckIfApplicantIsDuplicate bool   `json:"check_if_applicant_is_duplicate"`
}

type Client struct {
	log         *slog.Logger
	url         string
	authHeader  string
	trustKey    string
	maxRetries  int
	backoffBase time.Duration
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option customizes a Client.
type Option func(*Client)

// WithSleep replaces the wait between retries.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		c.sleep = fn
	}
}

func New(log *slog.Logger, cfg config.Fountain, opts ...Option) *Client {
	c := &Client{
		log:         log,
		url:         cfg.URL,
		authHeader:  cfg.AuthHeader,
		trustKey:    cfg.TrustKey,
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.BackoffBase,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		sleep: sleep,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Submit never returns an error: transport failures are folded into a synthetic
// 500 response, and timeouts into a synthetic 504 once retries run out.
func (c *Client) Submit(ctx context.Context, applicant *domain.Applicant) *domain.Response {
	log := c.log.With(slog.Int("row", applicant.Row))

	payload, err := json.Marshal(createApplicantRequest{
		Name:                        strings.TrimSpace(applicant.Name),
		Email:                       strings.TrimSpace(applicant.Email),
		Phone:                       strings.TrimSpace(applicant.PhoneNumber),
		CheckIfApplicantIsDuplicate: true,
	})
	if err != nil {
		return errorResponse(http.StatusInternalServerError, fmt.Sprintf("failed to marshal applicant: %v", err))
	}

	backoff := retry.WithMaxRetries(uint64(c.maxRetries), retry.NewExponential(c.backoffBase))

	for attempt := 1; ; attempt++ {
		log.DebugContext(ctx, "sending create applicant request", slog.Int("attempt", attempt))

		resp, err := c.do(ctx, payload)
		if err == nil {
			return resp
		}

		if !isTimeout(err) {
			log.ErrorContext(ctx, "create applicant request failed", slog.String("err", err.Error()))
			return errorResponse(http.StatusInternalServerError, err.Error())
		}

		delay, stop := backoff.Next()
		if stop {
			log.ErrorContext(ctx, "create applicant request timed out, no retries left",
				slog.Int("attempts", attempt),
			)
			return errorResponse(http.StatusGatewayTimeout, maxRetriesExceeded)
		}

		log.WarnContext(ctx, "create applicant request timed out, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", c.maxRetries),
			slog.Duration("delay", delay),
		)

		if err := c.sleep(ctx, delay); err != nil {
			return errorResponse(http.StatusInternalServerError, err.Error())
		}
	}
}

func (c *Client) do(ctx context.Context, payload []byte) (*domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(c.authHeader, c.trustKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to decode response body (status %d): invalid json", resp.StatusCode)
	}

	return &domain.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header,
	}, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func errorResponse(statusCode int, message string) *domain.Response {
	body, err := sjson.SetBytes([]byte("{}"), "error", message)
	if err != nil {
		body = []byte("{}")
	}

	return &domain.Response{
		StatusCode: statusCode,
		Body:       body,
		Header:     http.Header{},
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
