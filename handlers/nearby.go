package handlers

import (
	"net/http"
	"strconv"

	"saborhub/docstore"
	"saborhub/geo"
)

const DefaultRadiusKm = 5.0

// ProximosHandler runs the proximity search over the document store.
// An empty result is a success, not an error.
func ProximosHandler(docs docstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		latStr, lonStr := q.Get("lat"), q.Get("lon")
		if latStr == "" || lonStr == "" {
			respondDetail(w, http.StatusBadRequest, "lat e lon são obrigatórios")
			return
		}

		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			respondDetail(w, http.StatusBadRequest, "lat e lon devem ser numéricos")
			return
		}

		raio := DefaultRadiusKm
		if s := q.Get("raio_km"); s != "" {
			var err error
			raio, err = strconv.ParseFloat(s, 64)
			if err != nil {
				respondDetail(w, http.StatusBadRequest, "raio_km deve ser numérico")
				return
			}
		}

		resultado, err := geo.Nearby(r.Context(), docs, lat, lon, raio)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resultado)
	}
}

// HealthHandler reports liveness and which catalog driver is active.
func HealthHandler(driver string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"db":     driver,
			"modelo": "normalizado",
		})
	}
}
