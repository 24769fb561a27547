package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
)

// maxLoggedBody caps how much of a request or response body ends up in a log line.
const maxLoggedBody = 2048

// LoggingTransport logs every round trip with the logger found in the request context.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func NewLoggingTransport(transport http.RoundTripper) *LoggingTransport {
	if transport == nil {
		transport = &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}
	}

	return &LoggingTransport{Transport: transport}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := ctxlogger.GetLogger(req.Context())

	var reqBody string
	if req.Body != nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			logger.Error("failed to read request body", "error", err)
		}
		reqBody = truncate(bodyBytes)
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	logger.Debug("http client request started",
		"method", req.Method,
		"url", req.URL.String(),
		"body", reqBody,
	)

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("http client request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
			"elapsed_time", elapsed,
		)
		return nil, err
	}

	var respBody string
	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.Error("failed to read response body", "error", err)
		}
		respBody = truncate(bodyBytes)
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	logger.Info("http client request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status_code", resp.StatusCode,
		"elapsed_time", elapsed,
	)
	logger.Debug("http client response body", "url", req.URL.String(), "body", respBody)

	return resp, nil
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}

// New returns a client that logs through LoggingTransport. Zero timeout means no client timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: NewLoggingTransport(nil),
		Timeout:   timeout,
	}
}
