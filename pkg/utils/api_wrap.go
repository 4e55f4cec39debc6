package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorPage is the view model of the standalone error template.
type ErrorPage struct {
	Code    int
	Message string
	TraceID string
}

// PageRenderHook is called once per rendered page, metrics hang off it.
var PageRenderHook = func(page string) {}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondJSON(c *gin.Context, code int, data interface{}, message string) {
	status := "success"
	if code >= http.StatusBadRequest {
		status = "error"
	}
	c.JSON(code, APIResponse{
		Status:  status,
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// keyedPage is a view model that names the screen it renders.
type keyedPage interface {
	PageKey() string
}

// RespondPage renders template name with the page view model.
func RespondPage(c *gin.Context, code int, name string, page interface{}) {
	label := name
	if kp, ok := page.(keyedPage); ok {
		label = kp.PageKey()
	}
	PageRenderHook(label)
	c.HTML(code, name, page)
}

func RespondError(c *gin.Context, code int, message string) {
	c.HTML(code, "error.tmpl", ErrorPage{
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError turns an error that escaped a page service into an error page.
// Page services report backend failures as notices, so this is the last resort.
func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrPageNotFound):
		RespondError(c, http.StatusNotFound, "Page introuvable")
	case errors.Is(err, ErrInvalidForm):
		RespondError(c, http.StatusBadRequest, "Formulaire invalide")
	case errors.Is(err, ErrBackendUnavailable):
		log.Warn("backend unavailable", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "Le backend SmartCity est injoignable")
	default:
		log.Error("unexpected error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Erreur interne")
	}
}
