package httpclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// Doer is the minimal http.Client surface the adapters need. Tests swap in
// stubs without standing up a real server.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PostJSON marshals body, sends it, enforces a 2xx status and decodes the
// reply into response. Non-2xx statuses come back as *UpstreamError so the
// caller can inspect the status code and body.
func PostJSON(ctx context.Context, client Doer, url string, headers map[string]string, body, response interface{}) error {
	req, err := newJSONRequest(ctx, url, headers, body)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: respBody, URL: url}
	}

	if response != nil {
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// LineProcessor consumes one SSE line. Returning an error aborts the stream.
type LineProcessor func(line string) error

// PostStream sends body and feeds every non-empty response line to
// processLine. Used for text/event-stream completions.
func PostStream(ctx context.Context, client Doer, url string, headers map[string]string, body interface{}, processLine LineProcessor) error {
	req, err := newJSONRequest(ctx, url, headers, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("stream request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: respBody, URL: url}
	}

	scanner := bufio.NewScanner(resp.Body)
	// SSE data lines can exceed the default 64K token limit on long replies.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := processLine(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newJSONRequest(ctx context.Context, url string, headers map[string]string, body interface{}) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
