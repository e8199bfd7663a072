package geo_test

import (
	"context"
	"testing"

	"saborhub/geo"
	"saborhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource []models.RestauranteDoc

func (s sliceSource) ListRestaurantes(context.Context) ([]models.RestauranteDoc, error) {
	return s, nil
}

func coord(lat, lon float64) *models.Coordenadas {
	return &models.Coordenadas{Lat: &lat, Lon: &lon}
}

func doc(nome string, c *models.Coordenadas) models.RestauranteDoc {
	return models.RestauranteDoc{Nome: nome, Coordenadas: c}
}

func TestHaversine(t *testing.T) {
	// One degree of latitude on the 6371 km sphere.
	assert.InDelta(t, 111.19, geo.Haversine(0, 0, 1, 0), 0.01)

	// Paris to London.
	assert.InDelta(t, 343.5, geo.Haversine(48.8566, 2.3522, 51.5074, -0.1278), 1.0)

	// Same point.
	assert.Zero(t, geo.Haversine(-7.1195, -34.845, -7.1195, -34.845))

	// Symmetric.
	assert.Equal(t,
		geo.Haversine(10, 20, 30, 40),
		geo.Haversine(30, 40, 10, 20))
}

func TestNearbyEmptySource(t *testing.T) {
	resultado, err := geo.Nearby(context.Background(), sliceSource{}, 0, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, resultado)
	assert.NotNil(t, resultado)
}

func TestNearbySkipsDocsWithoutCoordinates(t *testing.T) {
	lon := -34.845
	source := sliceSource{
		doc("sem coordenadas", nil),
		doc("lat nula", &models.Coordenadas{Lat: nil, Lon: &lon}),
		doc("coordenadas vazias", &models.Coordenadas{}),
		doc("valido", coord(0, 0)),
	}

	resultado, err := geo.Nearby(context.Background(), source, 0, 0, 1e6)
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, "valido", resultado[0].Nome)
}

func TestNearbyRadiusZero(t *testing.T) {
	source := sliceSource{
		doc("exato", coord(-7.1195, -34.845)),
		doc("vizinho", coord(-7.12, -34.845)),
	}

	resultado, err := geo.Nearby(context.Background(), source, -7.1195, -34.845, 0)
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, "exato", resultado[0].Nome)
	assert.Zero(t, resultado[0].DistanciaKm)
}

func TestNearbyInclusiveBoundary(t *testing.T) {
	source := sliceSource{doc("na borda", coord(0, 0.02))}
	dist := geo.Haversine(0, 0, 0, 0.02)

	resultado, err := geo.Nearby(context.Background(), source, 0, 0, dist)
	require.NoError(t, err)
	assert.Len(t, resultado, 1, "distance equal to the radius must be included")

	resultado, err = geo.Nearby(context.Background(), source, 0, 0, dist-0.001)
	require.NoError(t, err)
	assert.Empty(t, resultado)
}

func TestNearbySortedAscending(t *testing.T) {
	source := sliceSource{
		doc("longe", coord(0, 0.03)),
		doc("perto", coord(0, 0.005)),
		doc("medio", coord(0, 0.015)),
	}

	resultado, err := geo.Nearby(context.Background(), source, 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, resultado, 3)
	assert.Equal(t, "perto", resultado[0].Nome)
	assert.Equal(t, "medio", resultado[1].Nome)
	assert.Equal(t, "longe", resultado[2].Nome)
	for i := 1; i < len(resultado); i++ {
		assert.LessOrEqual(t, resultado[i-1].DistanciaKm, resultado[i].DistanciaKm)
	}
}

func TestNearbyTiesKeepInputOrder(t *testing.T) {
	// Two points symmetric around the query longitude, exactly equidistant.
	source := sliceSource{
		doc("leste", coord(0, 0.018)),
		doc("oeste", coord(0, -0.018)),
		doc("centro", coord(0, 0)),
	}

	resultado, err := geo.Nearby(context.Background(), source, 0, 0, 5)
	require.NoError(t, err)
	require.Len(t, resultado, 3)
	assert.Equal(t, "centro", resultado[0].Nome)
	assert.Equal(t, "leste", resultado[1].Nome)
	assert.Equal(t, "oeste", resultado[2].Nome)
	assert.Equal(t, resultado[1].DistanciaKm, resultado[2].DistanciaKm)
}

func TestNearbyDistanceRoundedToTwoDecimals(t *testing.T) {
	// 0.01 degrees of latitude is 1.11194... km on the 6371 km sphere.
	source := sliceSource{doc("r", coord(0.01, 0))}

	resultado, err := geo.Nearby(context.Background(), source, 0, 0, 5)
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, 1.11, resultado[0].DistanciaKm)
}
