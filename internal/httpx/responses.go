package httpx

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes env with the given status code.
func JSON(w http.ResponseWriter, statusCode int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(env)
}

// JSONSuccess writes a success envelope. message and data may be empty.
func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	JSON(w, statusCode, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// JSONFail writes a fail envelope carrying message.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Envelope{Status: StatusFail, Message: message})
}
