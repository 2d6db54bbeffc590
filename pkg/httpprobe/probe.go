// Package httpprobe checks that a service HTTP endpoint answers with
// the expected status. It is meant as the optional post-gate "service
// up" probe against the dependent service's editor/admin endpoint.
package httpprobe

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultTimeout bounds one request attempt.
const DefaultTimeout = 5 * time.Second

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout  time.Duration
	Insecure bool
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	transport := &http.Transport{}
	if c.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // intentional for --insecure flag
	}

	client := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}

	return client.Do(req)
}

// Probe checks an HTTP endpoint. One Check is one GET; the gate owns
// any retrying.
type Probe struct {
	URL            string        // target URL (required)
	ExpectedStatus int           // expected HTTP status (default: 200)
	Timeout        time.Duration // request timeout (default: 5s)
	Insecure       bool          // skip TLS verification
	JSONPath       string        // optional body assertion: "path" or "path=expectedValue"
	Client         HTTPClient    // injected for testing
}

// Name identifies the probe in log output.
func (p *Probe) Name() string { return "http:" + p.URL }

// Check performs one GET attempt.
func (p *Probe) Check() error {
	if p.URL == "" {
		return fmt.Errorf("http probe: URL is required")
	}
	parsed, err := url.Parse(p.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("http probe: invalid URL %q", p.URL)
	}

	expectedStatus := p.ExpectedStatus
	if expectedStatus == 0 {
		expectedStatus = http.StatusOK
	}
	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := p.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout, Insecure: p.Insecure}
	}

	req, err := http.NewRequest(http.MethodGet, p.URL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var body string
	if p.JSONPath != "" {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("read response body: %w", readErr)
		}
		body = string(bodyBytes)
	} else {
		_ = resp.Body.Close()
	}

	if resp.StatusCode != expectedStatus {
		return fmt.Errorf("status %d, expected %d", resp.StatusCode, expectedStatus)
	}

	if p.JSONPath != "" {
		path, expectedValue, hasExpectedValue := parseJSONPath(p.JSONPath)
		jsonResult := gjson.Get(body, path)
		if !jsonResult.Exists() {
			return fmt.Errorf("JSON path %q not found", path)
		}
		if hasExpectedValue && jsonResult.String() != expectedValue {
			return fmt.Errorf("JSON path %q = %q, expected %q", path, jsonResult.String(), expectedValue)
		}
	}

	return nil
}

// parseJSONPath splits "path=expectedValue" into its parts. A bare
// "path" only asserts existence.
func parseJSONPath(spec string) (path, expectedValue string, hasExpectedValue bool) {
	if idx := strings.Index(spec, "="); idx >= 0 {
		return spec[:idx], spec[idx+1:], true
	}
	return spec, "", false
}
