package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	backoff            *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff is the default retry policy; nil disables retries.
	Backoff *BackoffConfig
	// Logger receives request/response events; nil disables HTTP logging.
	Logger HTTPLogger
	// Transport overrides the default transport, mostly for tests.
	Transport http.RoundTripper
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 100
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 5 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// BaseURL returns the normalized base URL.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

type exchange struct {
	method      string
	path        string
	queryParams map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
}

// doRequestWithBackoff sends the request, retrying on transport errors and retryable statuses.
func (hc *Client) doRequestWithBackoff(ctx context.Context, ex exchange, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil && idempotent(ex.method) {
		backoff = hc.backoff
	}

	attempts := 1
	if backoff != nil {
		attempts += backoff.MaxRetries
	}

	var (
		successResp, errorResp any
		status                 int
		err                    error
	)
	for attempt := 0; attempt < attempts; attempt++ {
		successResp, errorResp, status, err = hc.doRequest(ctx, ex)
		if err == nil || backoff == nil || !backoff.shouldRetry(status, err) || attempt == attempts-1 {
			break
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(ex.method, hc.buildURL(ex.path), status, err, attempt+1, backoff.MaxRetries)
		}

		select {
		case <-ctx.Done():
			return nil, nil, status, ctx.Err()
		case <-time.After(backoff.delay(attempt)):
		}
	}

	return successResp, errorResp, status, err
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// doRequest builds the URL and body, executes a single exchange and decodes the response.
func (hc *Client) doRequest(ctx context.Context, ex exchange) (any, any, int, error) {
	target := hc.buildURL(ex.path)
	if len(ex.queryParams) > 0 {
		target += "?" + buildQueryString(ex.queryParams)
	}

	bodyReader, contentType, err := hc.encodeBody(ex.body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, ex.method, target, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", hc.defaultContentType)
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range ex.headers {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(ex.method, target)
	}

	started := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(ex.method, target, 0, time.Since(started), err)
		}
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(started)
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(ex.method, target, resp.StatusCode, latency)
		}
		if ex.successResp != nil && len(bodyBytes) > 0 {
			if err := hc.unmarshalResponse(bodyBytes, respContentType, ex.successResp); err != nil {
				return nil, nil, resp.StatusCode, err
			}
		}
		return ex.successResp, nil, resp.StatusCode, nil
	}

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	if hc.logger != nil {
		hc.logger.LogResponseError(ex.method, target, resp.StatusCode, latency, statusErr)
	}

	if ex.errorResp != nil && len(bodyBytes) > 0 {
		if err := hc.unmarshalResponse(bodyBytes, respContentType, ex.errorResp); err != nil {
			return nil, nil, resp.StatusCode, errors.Join(statusErr, err)
		}
		return nil, ex.errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

func (hc *Client) encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return bytes.NewBufferString(body), "text/plain", nil
	case []byte:
		return bytes.NewBuffer(body), "application/octet-stream", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return bytes.NewBuffer(xmlBody), "application/xml", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return bytes.NewBuffer(jsonBody), "application/json", nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain", "text/html":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins baseURL and path with exactly one slash
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString encodes params in key order so URLs are stable
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
