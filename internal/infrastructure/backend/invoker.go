// Package backend talks to the remote command-generation service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

type requestBody struct {
	Query   string             `json:"query"`
	Context domain.ExecContext `json:"context"`
}

// HTTPInvoker issues exactly one POST per Invoke and classifies the outcome.
type HTTPInvoker struct {
	endpoint string
	apiKey   string
	client   *http.Client
	decoder  ports.Decoder
	logger   ports.Logger
}

// NewHTTPInvoker builds an invoker from the backend settings. A missing API
// key is not an error at this layer; the header is simply omitted.
func NewHTTPInvoker(settings domain.BackendSettings, decoder ports.Decoder, logger ports.Logger) *HTTPInvoker {
	return &HTTPInvoker{
		endpoint: settings.Endpoint,
		apiKey:   settings.APIKey,
		client:   &http.Client{Timeout: settings.Timeout()},
		decoder:  decoder,
		logger:   logger,
	}
}

// Invoke implements ports.Invoker.
func (i *HTTPInvoker) Invoke(ctx context.Context, query domain.Query) domain.BackendResponse {
	payload, err := json.Marshal(requestBody{Query: query.Text, Context: query.Context})
	if err != nil {
		return domain.BackendResponse{
			Kind:    domain.ResponseApplicationError,
			Message: fmt.Sprintf("encode request: %v", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.BackendResponse{
			Kind:    domain.ResponseApplicationError,
			Message: fmt.Sprintf("build request: %v", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	if i.apiKey != "" {
		req.Header.Set("X-API-Key", i.apiKey)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return domain.BackendResponse{
			Kind:    domain.ResponseTransportFailure,
			Message: "request failed",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.BackendResponse{
			Kind:    domain.ResponseTransportFailure,
			Message: "read response body",
			Err:     err,
		}
	}

	return i.classify(resp.StatusCode, resp.Status, body)
}

// classify maps status and body to a BackendResponse. Any body carrying an
// `error` key is an application error regardless of status; the raw body is
// kept in the diagnostics log.
func (i *HTTPInvoker) classify(statusCode int, status string, body []byte) domain.BackendResponse {
	if field := gjson.GetBytes(body, "error"); field.Exists() {
		i.logger.Debug("backend reported error", map[string]interface{}{
			"status": status,
			"body":   string(body),
		})
		message := field.String()
		if message == "" {
			message = string(body)
		}
		return domain.BackendResponse{
			Kind:    domain.ResponseApplicationError,
			Message: message,
		}
	}

	if statusCode < 200 || statusCode > 299 {
		return domain.BackendResponse{
			Kind:    domain.ResponseApplicationError,
			Message: fmt.Sprintf("unexpected status %s", status),
		}
	}

	command, ok := i.decoder.Decode(body)
	if !ok {
		i.logger.Debug("backend body missing command", map[string]interface{}{
			"body": string(body),
		})
		return domain.BackendResponse{
			Kind:    domain.ResponseDecodeFailure,
			Message: "no command field in response",
		}
	}

	return domain.BackendResponse{
		Kind:    domain.ResponseSuccess,
		Command: command,
	}
}

var _ ports.Invoker = (*HTTPInvoker)(nil)
