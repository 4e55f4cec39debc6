package response_models

import "encoding/json"

// MessageResponse is the body every write endpoint answers with. Failures use
// either "detail" (FastAPI HTTPException, sometimes a validation list) or "error".
type MessageResponse struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Detail  json.RawMessage `json:"detail"`
}

// ServerError returns the structured error text, detail before error.
// A non-string detail (e.g. a 422 validation list) is summarised by its first "msg".
func (m MessageResponse) ServerError() string {
	if d := m.detailText(); d != "" {
		return d
	}
	return m.Error
}

func (m MessageResponse) detailText() string {
	if len(m.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.Detail, &s); err == nil {
		return s
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(m.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}
