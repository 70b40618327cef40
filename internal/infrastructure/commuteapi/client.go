// Package commuteapi is the HTTP client for the commute-benefits REST API.
package commuteapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/fleetdemo/commute-benefits/internal/api/metrics"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

const maxErrorBody = 512

// Config configures the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RPS caps outbound requests per second; zero disables throttling.
	RPS   float64
	Burst int
}

// Client implements ports.CommuteAPI. The bearer token is supplied per call
// and never retained.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// StatusError is a non-2xx response from the API.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("commute api %s: status=%d body=%s", e.Endpoint, e.Code, e.Body)
}

// Unwrap maps the status onto the domain sentinels.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return domain.ErrUpstream
}

func New(cfg Config, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("commute api: invalid base url %q", cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	c := &Client{
		base: base,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = int(cfg.RPS) + 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}
	return c, nil
}

var _ ports.CommuteAPI = (*Client)(nil)

func (c *Client) Login(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	body := map[string]string{"username": username, "password": password}
	var out ports.TokenPair
	if err := c.do(ctx, "login", http.MethodPost, "token/", "", body, &out); err != nil {
		return nil, err
	}
	if out.Access == "" {
		return nil, fmt.Errorf("commute api login: %w: empty access token", domain.ErrUpstream)
	}
	return &out, nil
}

func (c *Client) ListEmployees(ctx context.Context, token, department string) ([]domain.Employee, error) {
	q := url.Values{}
	if department != "" {
		q.Set("department", department)
	}
	raw, err := c.raw(ctx, "list_employees", http.MethodGet, withQuery("employees/", q), token, nil)
	if err != nil {
		return nil, err
	}
	employees := decodeList[domain.Employee](raw, c.log.With().Str("endpoint", "list_employees").Logger())
	valid := employees[:0]
	for _, e := range employees {
		if e.ID.Valid() {
			valid = append(valid, e)
		}
	}
	return valid, nil
}

func (c *Client) ListEnrollments(ctx context.Context, token string, status domain.EnrollmentStatus) ([]domain.EnrollmentRecord, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	raw, err := c.raw(ctx, "list_enrollments", http.MethodGet, withQuery("enrollments/", q), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.EnrollmentRecord](raw, c.log.With().Str("endpoint", "list_enrollments").Logger()), nil
}

func (c *Client) CreateEnrollment(ctx context.Context, token string, in ports.CreateEnrollmentInput) (*domain.EnrollmentRecord, error) {
	var out domain.EnrollmentRecord
	if err := c.do(ctx, "create_enrollment", http.MethodPost, "enrollments/", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelEnrollment(ctx context.Context, token string, id domain.EnrollmentID) (*domain.EnrollmentRecord, error) {
	var out domain.EnrollmentRecord
	path := "enrollments/" + strconv.FormatInt(int64(id), 10) + "/cancel/"
	if err := c.do(ctx, "cancel_enrollment", http.MethodPost, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ParticipationReport(ctx context.Context, token string) (*domain.ParticipationReport, error) {
	var out domain.ParticipationReport
	if err := c.do(ctx, "participation_report", http.MethodGet, "reports/participation", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HRDashboard(ctx context.Context, token string) (*domain.HRDashboard, error) {
	var out domain.HRDashboard
	if err := c.do(ctx, "hr_dashboard", http.MethodGet, "hr/dashboard/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOptions(ctx context.Context, token string) ([]domain.CommuteOption, error) {
	raw, err := c.raw(ctx, "list_options", http.MethodGet, "options/", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.CommuteOption](raw, c.log.With().Str("endpoint", "list_options").Logger()), nil
}

func (c *Client) Lobby(ctx context.Context, token string) (*domain.Lobby, error) {
	var out domain.Lobby
	if err := c.do(ctx, "lobby", http.MethodGet, "commute/lobby/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StartSession(ctx context.Context, token string) (*domain.QuestSession, error) {
	var out domain.QuestSession
	if err := c.do(ctx, "start_session", http.MethodPost, "commute/sessions/start/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FinishSession(ctx context.Context, token string, sessionID int64) (*domain.QuestSession, error) {
	var out domain.QuestSession
	path := "commute/sessions/" + strconv.FormatInt(sessionID, 10) + "/finish/"
	if err := c.do(ctx, "finish_session", http.MethodPost, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EmployeeDashboard(ctx context.Context, token string) (*domain.EmployeeDashboard, error) {
	var out domain.EmployeeDashboard
	if err := c.do(ctx, "employee_dashboard", http.MethodGet, "employee/dashboard/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SelectOption(ctx context.Context, token string, option domain.OptionID) (*domain.SelectedOption, error) {
	body := map[string]domain.OptionID{"optionId": option}
	var out domain.SelectedOption
	if err := c.do(ctx, "select_option", http.MethodPost, "employee/commute/select/", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping reports whether the API answers at all. Any response below 500
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{Endpoint: "ping", Code: resp.StatusCode}
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path, token string, in, out any) error {
	raw, err := c.raw(ctx, endpoint, method, path, token, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("commute api %s: decode: %w", endpoint, err)
	}
	return nil
}

// raw performs one request and returns the body of a 2xx response.
func (c *Client) raw(ctx context.Context, endpoint, method, path, token string, in any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("commute api %s: %w", endpoint, err)
		}
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("commute api %s: encode: %w", endpoint, err)
		}
		body = bytes.NewReader(buf)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("commute api %s: %w", endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.ResolveReference(ref).String(), body)
	if err != nil {
		return nil, fmt.Errorf("commute api %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		return nil, fmt.Errorf("commute api %s: %w: %w", endpoint, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("commute api %s: read body: %w", endpoint, err)
	}
	return raw, nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
