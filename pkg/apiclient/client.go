// Package apiclient, Django backend REST API'sine giden tüm HTTP trafiğini yürüten
// düşük seviyeli client'ı içerir.
//
// Tek bir base URL'e karşı GET/POST/PUT/DELETE yapar, JSON body serialize eder ve
// 2xx dışındaki her yanıtı *APIError'a çevirir. Şema doğrulaması bu katmanda yapılmaz;
// yanıtın şeklini bilen taraf service katmanıdır.
//
// Kullanım:
//
//	client, err := apiclient.New("https://example.org/api", apiclient.WithTimeout(15*time.Second))
//	var env models.Envelope[models.Workshop]
//	err = client.Get(ctx, "/workshops/", &env)
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/djangocampus/campus/pkg/logger"
)

const (
	// DefaultTimeout, WithTimeout verilmezse kullanılan request timeout'u.
	DefaultTimeout = 30 * time.Second

	// maxErrorBody, hata gövdesinden okunacak maksimum byte (1 MiB).
	maxErrorBody = 1 << 20

	// RequestIDHeader, correlation id'nin backend'e taşındığı header.
	RequestIDHeader = "X-Request-ID"
)

// Client, backend API client'ı. Goroutine-safe, state tutmaz, her çağrı bağımsızdır.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	headers    http.Header
	lggr       logger.Logger

	retryAttempts uint
	retryDelay    time.Duration
}

// Option, Client'ı yapılandıran functional option.
type Option func(*Client)

// WithHTTPClient, özel bir *http.Client kullanır (test veya özel transport için).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout, request timeout'unu ayarlar. 0 veya negatif değer yok sayılır.
// WithHTTPClient ile verilen client değiştirilmez, kopyası kullanılır.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger, request log'ları için logger inject eder.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.lggr = l
		}
	}
}

// WithRetry, GET istekleri için retry'ı açar.
// attempts toplam deneme sayısıdır (1 = retry yok). Sadece transport hataları ve 5xx
// yanıtlar tekrar denenir; yazma operasyonları hiçbir zaman tekrar denenmez.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		if attempts == 0 {
			attempts = 1
		}
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// WithHeader, her request'e eklenecek sabit bir header tanımlar.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// New, yeni bir Client oluşturur. baseURL boşsa veya parse edilemiyorsa hata döner.
// Sondaki "/" kırpılır; path'ler her zaman "/" ile başlamalıdır.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base URL %q", baseURL)
	}

	c := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		headers:       make(http.Header),
		lggr:          logger.Nop(),
		retryAttempts: 1,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Timeout option sırasından bağımsız, en son uygulanır.
	if c.timeout > 0 && c.httpClient.Timeout != c.timeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c, nil
}

// BaseURL, kırpılmış base URL'i döner.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get, GET isteği yapar ve JSON yanıtı out'a decode eder.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	if c.retryAttempts <= 1 {
		return c.do(ctx, http.MethodGet, path, nil, out)
	}

	return retry.Do(
		func() error {
			return c.do(ctx, http.MethodGet, path, nil, out)
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			c.lggr.Debugw("retrying request", "path", path, "attempt", n+1, "error", err)
		}),
	)
}

// Post, body'yi JSON olarak gönderir ve yanıtı out'a decode eder.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put, body'yi JSON olarak gönderir ve yanıtı out'a decode eder.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete, DELETE isteği yapar. Yanıt gövdesi varsa out'a decode edilir.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do, tek bir HTTP round trip'i yürütür.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.lggr.Debugw("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.lggr.Debugw("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrInvalidResponse, method, path, err)
	}

	return nil
}

// statusText, "400 Bad Request" formatındaki resp.Status'tan metin kısmını ayırır.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// isRetryable, GET retry'ı için: transport hatası veya 5xx.
func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsServerError()
	}
	return errors.Is(err, ErrTransport) && !errors.Is(err, context.Canceled)
}
