package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/skyblockcheck/checker/internal/domain"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 16 << 20

type response struct {
	status int
	header http.Header
	body   []byte
}

// get issues one GET and reads the whole body. Transport failures come back
// as NETWORK_ERROR; status codes are left for the caller to interpret.
func get(ctx context.Context, client *http.Client, logger *slog.Logger, service, url string, header http.Header) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, networkError(service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, networkError(service, err)
	}

	logger.Debug(service+" request",
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"bytes", len(body),
		"latency", time.Since(start))

	return &response{status: resp.StatusCode, header: resp.Header, body: body}, nil
}

func networkError(service string, err error) *domain.AppError {
	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return domain.ErrNetwork(fmt.Sprintf("request to %s timed out", service), err)
	}
	return domain.ErrNetwork(fmt.Sprintf("network error while contacting %s", service), err)
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// snippet returns at most the first 200 bytes of body for log output.
func snippet(body []byte) string {
	return string(body[:min(200, len(body))])
}
