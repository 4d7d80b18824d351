package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse Пишет статус и тело в JSON
func WriteJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteError Ошибка в JSON вида {"error": "..."}
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, errorBody{Error: msg})
}
