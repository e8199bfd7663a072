package docstore

import (
	"context"
	"sync"

	"saborhub/models"
)

// Memory is a mutex-guarded in-memory Store. It backs the server when no
// MONGO_URL is configured and the tests everywhere.
type Memory struct {
	mu   sync.RWMutex
	docs []models.RestauranteDoc
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) InsertRestaurante(_ context.Context, doc models.RestauranteDoc) error {
	preencherPadroes(&doc)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
	return nil
}

func (m *Memory) ListRestaurantes(_ context.Context) ([]models.RestauranteDoc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.RestauranteDoc, len(m.docs))
	copy(out, m.docs)
	return out, nil
}

func (m *Memory) PendingCoordenadas(_ context.Context, limit int) ([]models.RestauranteDoc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.RestauranteDoc{}
	for _, d := range m.docs {
		if len(out) == limit {
			break
		}
		if !d.TemCoordenadas() {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory) SetCoordenadas(_ context.Context, nome, cidade string, lat, lon float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		d := &m.docs[i]
		if d.Nome != nome || d.Cidade != cidade || d.TemCoordenadas() {
			continue
		}
		la, lo := lat, lon
		d.Coordenadas = &models.Coordenadas{Lat: &la, Lon: &lo}
	}
	return nil
}
