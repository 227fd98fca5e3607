// Package apiclient talks to the college REST backend.
//
// Client.Do is the single request primitive: it injects the bearer token, sends JSON
// and normalises failures into *errors.Error values. The namespaces hanging off Client
// (Auth, Students, Courses, Admin, Classroom, Grades, Announcements) map each backend
// endpoint to one Do call and decode the response into typed models.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal/pkg/config"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/middleware/requestid"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000/api"

// Observer records one observation per backend round trip. Status is 0 when no
// response was received.
type Observer interface {
	ObserveAPIRequest(method, resource string, status int, duration time.Duration)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     tokenstore.Provider
	Logger     *zap.Logger
	Metrics    Observer
	Validator  *validator.Validate
}

// RequestOptions mirrors the knobs a caller may set on a single request. Body must
// already be JSON encoded.
type RequestOptions struct {
	Method  string
	Headers map[string]string
	Body    []byte
}

// Client is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    tokenstore.Provider
	logger    *zap.Logger
	metrics   Observer
	validator *validator.Validate

	Auth          *AuthAPI
	Students      *StudentAPI
	Courses       *CourseAPI
	Admin         *AdminAPI
	Classroom     *ClassroomAPI
	Grades        *GradesAPI
	Announcements *AnnouncementsAPI
}

// New constructs a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Tokens == nil {
		opts.Tokens = tokenstore.Static("")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Validator == nil {
		opts.Validator = validator.New()
	}

	c := &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		http:      opts.HTTPClient,
		tokens:    opts.Tokens,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		validator: opts.Validator,
	}
	c.Auth = &AuthAPI{c: c}
	c.Students = &StudentAPI{c: c}
	c.Courses = &CourseAPI{c: c}
	c.Admin = &AdminAPI{c: c}
	c.Classroom = &ClassroomAPI{c: c}
	c.Grades = &GradesAPI{c: c}
	c.Announcements = &AnnouncementsAPI{c: c}
	return c
}

// NewFromConfig wires a Client from application config.
func NewFromConfig(cfg config.APIConfig, tokens tokenstore.Provider, logger *zap.Logger, metrics Observer) *Client {
	return New(Options{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Tokens:     tokens,
		Logger:     logger,
		Metrics:    metrics,
	})
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues a request against baseURL+endpoint and returns the JSON body verbatim.
// A successful response with an empty body yields a nil message.
func (c *Client) Do(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodGet
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logFailure(method, endpoint, 0, err)
		return nil, appErrors.Wrap(err, appErrors.ErrTokenStore.Code, appErrors.ErrTokenStore.Status, appErrors.ErrTokenStore.Message)
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		c.logFailure(method, endpoint, 0, err)
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, appErrors.ErrNetwork.Message)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		reqID = requestid.New()
	}
	req.Header.Set(requestid.Header, reqID)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, endpoint, 0, time.Since(start))
		c.logFailure(method, endpoint, 0, err)
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, appErrors.ErrNetwork.Message)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.observe(method, endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		c.logFailure(method, endpoint, resp.StatusCode, err)
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, appErrors.ErrNetwork.Message)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &appErrors.Error{
			Code:    appErrors.ErrAPI.Code,
			Status:  resp.StatusCode,
			Message: backendMessage(raw),
		}
		c.logFailure(method, endpoint, resp.StatusCode, apiErr)
		return nil, apiErr
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		decodeErr := appErrors.Clone(appErrors.ErrDecode, "")
		decodeErr.Status = resp.StatusCode
		c.logFailure(method, endpoint, resp.StatusCode, decodeErr)
		return nil, decodeErr
	}
	return json.RawMessage(trimmed), nil
}

// send marshals payload, issues the request and returns the raw body.
func (c *Client) send(ctx context.Context, method, endpoint string, payload interface{}) (json.RawMessage, error) {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to encode request")
		}
		body = encoded
	}
	return c.Do(ctx, endpoint, RequestOptions{Method: method, Body: body})
}

// sendInto sends and decodes the whole body into out.
func (c *Client) sendInto(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	raw, err := c.send(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

// sendResource sends and decodes the object found under key, or the whole body when
// the backend does not wrap single resources.
func (c *Client) sendResource(ctx context.Context, method, endpoint, key string, payload, out interface{}) error {
	raw, err := c.send(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}
	return decodeResource(raw, key, out)
}

func (c *Client) observe(method, endpoint string, status int, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveAPIRequest(method, resourceLabel(endpoint), status, duration)
}

func (c *Client) logFailure(method, endpoint string, status int, err error) {
	c.logger.Warn("api request failed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
		zap.Error(err),
	)
}

// backendMessage extracts the backend "message" field, falling back to the generic
// message for empty, non-JSON or message-less bodies.
func backendMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return appErrors.FallbackMessage
	}
	if strings.TrimSpace(payload.Message) == "" {
		return appErrors.FallbackMessage
	}
	return payload.Message
}

// resourceLabel keeps metric cardinality bounded by labelling on the first path
// segment only.
func resourceLabel(endpoint string) string {
	path := endpoint
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	path = strings.TrimPrefix(path, "/")
	if idx := strings.Index(path, "/"); idx >= 0 {
		path = path[:idx]
	}
	if path == "" {
		return "root"
	}
	return path
}
