package utils

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(response)
}

type errorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// RespondError writes a JSON error body. The underlying error is logged, and
// only the message is shown to the client.
func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	detail := ""
	if err != nil {
		detail = err.Error()
		if statusCode >= http.StatusInternalServerError {
			zap.L().Error(message, zap.Int("status", statusCode), zap.Error(err))
			detail = http.StatusText(statusCode)
		}
	}
	RespondJSON(w, statusCode, errorResponse{
		Error:      detail,
		StatusCode: statusCode,
		Message:    message,
	})
}

// GetPageLimitAndOffset reads ?page= and ?limit= (1-based page).
func GetPageLimitAndOffset(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
