package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"smartcity/internal/infra"
	"smartcity/internal/models/response_models"
	"smartcity/internal/monitoring"
	"smartcity/pkg/middleware"
	"smartcity/pkg/utils"
)

const maxBodyBytes = 4 << 20

// BackendError is a request the backend answered but refused. Message holds the
// structured server error (detail or error field) when there was one.
type BackendError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

func (e *BackendError) Unwrap() error { return utils.ErrBackendRejected }

// ServerMessage returns the structured server error carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message, true
	}
	return "", false
}

// BackendRepository issues one HTTP request per call against the smart-city API.
// route is the endpoint template used for metrics, path the concrete request path.
type BackendRepository struct {
	backend *infra.Backend
	log     *zap.Logger
}

func NewBackendRepository(backend *infra.Backend, log *zap.Logger) *BackendRepository {
	return &BackendRepository{backend: backend, log: log.Named("backend")}
}

func (r *BackendRepository) get(ctx context.Context, route, path string, out any) error {
	status, body, err := r.do(ctx, http.MethodGet, route, path, nil)
	if err != nil {
		return err
	}
	if status/100 != 2 {
		return r.rejected(http.MethodGet, route, path, status, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		monitoring.TrackBackendCall(http.MethodGet, route, monitoring.OutcomeDecode, 0)
		r.log.Warn("undecodable response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", utils.ErrDecodeResponse, path, err)
	}
	return nil
}

func (r *BackendRepository) post(ctx context.Context, route string, payload any) (response_models.MessageResponse, error) {
	var msg response_models.MessageResponse

	raw, err := json.Marshal(payload)
	if err != nil {
		return msg, fmt.Errorf("encode %s payload: %w", route, err)
	}

	status, body, err := r.do(ctx, http.MethodPost, route, route, raw)
	if err != nil {
		return msg, err
	}
	if status/100 != 2 {
		return msg, r.rejected(http.MethodPost, route, route, status, body)
	}

	// Some write endpoints return nothing useful; an undecodable 2xx body is still a success.
	_ = json.Unmarshal(body, &msg)

	// The backend reports some business failures with a 2xx and an "error" field.
	if msg.Error != "" {
		r.log.Warn("backend rejected request", zap.String("path", route), zap.Int("status", status), zap.String("error", msg.Error))
		return msg, &BackendError{Method: http.MethodPost, Path: route, Status: status, Message: msg.Error}
	}
	return msg, nil
}

func (r *BackendRepository) do(ctx context.Context, method, route, path string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.backend.BaseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if traceID := middleware.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(middleware.TraceHeader, traceID)
	}

	start := time.Now()
	resp, err := r.backend.HTTP.Do(req)
	if err != nil {
		monitoring.TrackBackendCall(method, route, monitoring.OutcomeTransport, time.Since(start))
		r.log.Warn("backend unreachable", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return 0, nil, fmt.Errorf("%w: %v", utils.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		monitoring.TrackBackendCall(method, route, monitoring.OutcomeTransport, time.Since(start))
		return 0, nil, fmt.Errorf("%w: read %s: %v", utils.ErrBackendUnavailable, path, err)
	}

	outcome := monitoring.OutcomeOK
	if resp.StatusCode/100 != 2 {
		outcome = monitoring.OutcomeRejected
	}
	monitoring.TrackBackendCall(method, route, outcome, time.Since(start))

	return resp.StatusCode, data, nil
}

func (r *BackendRepository) rejected(method, route, path string, status int, body []byte) error {
	var msg response_models.MessageResponse
	_ = json.Unmarshal(body, &msg)

	r.log.Warn("backend rejected request",
		zap.String("method", method),
		zap.String("route", route),
		zap.String("path", path),
		zap.Int("status", status))

	return &BackendError{Method: method, Path: path, Status: status, Message: msg.ServerError()}
}

// Ping checks that the backend answers its root endpoint.
func (r *BackendRepository) Ping(ctx context.Context) error {
	var welcome response_models.MessageResponse
	return r.get(ctx, "/", "/", &welcome)
}

func (r *BackendRepository) BaseURL() string {
	return r.backend.BaseURL
}
