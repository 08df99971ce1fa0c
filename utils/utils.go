package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := jsoniter.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

func RespondError(w http.ResponseWriter, statusCode int, err error, msg string) {
	if err != nil {
		zap.L().Warn(msg, zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]string{
		"message": msg,
	})
}
