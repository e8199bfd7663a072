package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"saborhub/models"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("response encode error:", err)
	}
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// respondError maps the domain error kinds onto HTTP statuses: malformed
// input and bad references are the caller's fault (400), a missing target
// is 404, anything else is an infrastructure fault.
func respondError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	var rErr *models.ReferenceError
	switch {
	case errors.As(err, &vErr):
		respondDetail(w, http.StatusBadRequest, vErr.Msg)
	case errors.As(err, &rErr):
		respondDetail(w, http.StatusBadRequest, rErr.Msg)
	case errors.Is(err, models.ErrNotFound):
		respondDetail(w, http.StatusNotFound, "Restaurante não encontrado")
	default:
		log.Println("internal error:", err)
		respondDetail(w, http.StatusInternalServerError, "erro interno")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondDetail(w, http.StatusBadRequest, "corpo da requisição inválido")
		return false
	}
	return true
}
