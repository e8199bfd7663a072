// Package docstore holds the denormalized restaurant documents that feed
// the proximity search. Two implementations exist: MongoDB and an
// in-memory store used when no MONGO_URL is configured.
package docstore

import (
	"context"

	"saborhub/models"
)

// Store is the document-side persistence contract.
type Store interface {
	// InsertRestaurante stores one document, filling defaults for
	// missing reviews, photos, opening hours and coordinates.
	InsertRestaurante(ctx context.Context, doc models.RestauranteDoc) error

	// ListRestaurantes returns every document, unordered.
	ListRestaurantes(ctx context.Context) ([]models.RestauranteDoc, error)

	// PendingCoordenadas returns up to limit documents that still lack
	// a usable coordinate.
	PendingCoordenadas(ctx context.Context, limit int) ([]models.RestauranteDoc, error)

	// SetCoordenadas fills the coordinate of documents matching
	// (nome, cidade) that do not have one yet.
	SetCoordenadas(ctx context.Context, nome, cidade string, lat, lon float64) error
}

// preencherPadroes applies the document defaults of the original demo:
// empty lists, the standard weekly schedule and a null coordinate
// placeholder.
func preencherPadroes(doc *models.RestauranteDoc) {
	if doc.Avaliacoes == nil {
		doc.Avaliacoes = []string{}
	}
	if doc.Fotos == nil {
		doc.Fotos = []string{}
	}
	if doc.Horario == (models.HorarioFuncionamento{}) {
		doc.Horario = models.HorarioPadrao()
	}
	if doc.Coordenadas == nil {
		doc.Coordenadas = &models.Coordenadas{}
	}
}
