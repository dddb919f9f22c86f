package transport

import (
	"encoding/json"
	"net/http"

	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/utils/errors"
)

type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: data})
}

// writeError emits {success:false, error, code}. A response is either a
// success payload or a failure description, never both.
func writeError(w http.ResponseWriter, err error) {
	if ce, ok := err.(errors.CustomError); ok {
		writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
			Success: false,
			Error:   ce.Error(),
			Code:    ce.ErrorCode(),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Success: false,
		Error:   constant.ErrorTypeMessage[constant.ErrInternal],
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
	})
}
