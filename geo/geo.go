// Package geo implements the proximity search: a linear scan over the
// document-form restaurants, filtered by radius and ranked by distance.
package geo

import (
	"context"
	"math"
	"sort"

	"saborhub/models"
)

// Source supplies the restaurant documents to scan. docstore.Store
// satisfies it.
type Source interface {
	ListRestaurantes(ctx context.Context) ([]models.RestauranteDoc, error)
}

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points on a sphere of mean Earth radius.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)
	a := sinLat*sinLat + math.Cos(rlat1)*math.Cos(rlat2)*sinLon*sinLon
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Nearby returns the restaurants within raioKm of (lat, lon), nearest
// first. Documents without a usable coordinate are skipped. The radius
// comparison uses the unrounded distance; the reported distancia_km is
// rounded to two decimals. The sort is stable, so equidistant documents
// keep their input order.
func Nearby(ctx context.Context, source Source, lat, lon, raioKm float64) ([]models.RestauranteProximo, error) {
	docs, err := source.ListRestaurantes(ctx)
	if err != nil {
		return nil, err
	}

	resultado := []models.RestauranteProximo{}
	for _, d := range docs {
		if !d.TemCoordenadas() {
			continue
		}
		dist := Haversine(lat, lon, *d.Coordenadas.Lat, *d.Coordenadas.Lon)
		if dist > raioKm {
			continue
		}
		resultado = append(resultado, models.RestauranteProximo{
			RestauranteDoc: d,
			DistanciaKm:    math.Round(dist*100) / 100,
		})
	}

	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].DistanciaKm < resultado[j].DistanciaKm
	})
	return resultado, nil
}
