package utils

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"hopa-consensus/pkg/logger"

	"go.uber.org/zap"
)

const maxLoggedBody = 2000

// LoggingTransport implements http.RoundTripper and logs requests and responses
type LoggingTransport struct {
	Transport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
// The Authorization header is never logged.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBody := readAndRestore(&req.Body)
	logger.Log.Debug("outbound request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("body", truncate(reqBody)),
	)

	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Log.Error("outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("latency", duration),
			zap.Error(err),
		)
		return nil, err
	}

	respBody := readAndRestore(&resp.Body)
	logger.Log.Info("outbound response",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
		zap.String("body", truncate(respBody)),
	)

	return resp, nil
}

func readAndRestore(body *io.ReadCloser) string {
	if *body == nil {
		return ""
	}
	data, _ := io.ReadAll(*body)
	(*body).Close()
	*body = io.NopCloser(bytes.NewBuffer(data))
	return string(data)
}

func truncate(s string) string {
	if len(s) > maxLoggedBody {
		return s[:maxLoggedBody] + "...(truncated)"
	}
	return s
}

// NewHTTPClient returns a new http.Client with logging enabled
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
		},
	}
}
