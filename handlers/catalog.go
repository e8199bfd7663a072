package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"saborhub/database"
	"saborhub/docstore"
	"saborhub/models"
)

// CriarEstadoHandler creates a state, returning the existing one when the
// name is already taken (get-or-create).
func CriarEstadoHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.EstadoCreate
		if !decodeBody(w, r, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			respondError(w, err)
			return
		}

		id, err := db.InsertEstado(p.Nome)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, models.Estado{ID: id, Nome: p.Nome})
	}
}

// ListarEstadosHandler lists all states sorted by name.
func ListarEstadosHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		estados, err := db.ListEstados()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, estados)
	}
}

// CriarCidadeHandler creates a city under an existing state, with
// get-or-create on (nome, estado_id).
func CriarCidadeHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.CidadeCreate
		if !decodeBody(w, r, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			respondError(w, err)
			return
		}

		id, err := db.InsertCidade(p.Nome, p.EstadoID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, models.Cidade{ID: id, Nome: p.Nome, EstadoID: p.EstadoID})
	}
}

// ListarCidadesHandler lists cities sorted by name, optionally filtered by
// estado_id.
func ListarCidadesHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cidades, err := db.ListCidades(queryID(r, "estado_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, cidades)
	}
}

// CriarRestauranteHandler creates a restaurant from already-normalized ids.
func CriarRestauranteHandler(db *database.DB, docs docstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.RestauranteCreateIDs
		if !decodeBody(w, r, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			respondError(w, err)
			return
		}

		id, err := db.InsertRestaurante(p.Nome, p.EstadoID, p.CidadeID, p.CardapioPrincipal)
		if err != nil {
			respondError(w, err)
			return
		}

		rest, err := db.GetRestaurante(id)
		if err != nil {
			respondError(w, err)
			return
		}
		espelharDocumento(r.Context(), docs, rest, p.Avaliacoes, p.Fotos, p.Horario, p.Coordenadas)
		respondJSON(w, http.StatusCreated, rest)
	}
}

// CriarRestaurantePorNomesHandler creates a restaurant from free-text state
// and city labels, resolving or creating the hierarchy along the way.
func CriarRestaurantePorNomesHandler(db *database.DB, docs docstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.RestauranteCreateNames
		if !decodeBody(w, r, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			respondError(w, err)
			return
		}

		id, err := db.InsertRestaurantePorNomes(p.Nome, p.EstadoNome, p.CidadeNome, p.CardapioPrincipal)
		if err != nil {
			respondError(w, err)
			return
		}

		rest, err := db.GetRestaurante(id)
		if err != nil {
			respondError(w, err)
			return
		}
		espelharDocumento(r.Context(), docs, rest, p.Avaliacoes, p.Fotos, p.Horario, p.Coordenadas)
		respondJSON(w, http.StatusCreated, rest)
	}
}

// GetRestauranteHandler returns one restaurant joined with state and city
// names.
func GetRestauranteHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		rest, err := db.GetRestaurante(id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, rest)
	}
}

// ListarRestaurantesHandler lists restaurants sorted by name, optionally
// filtered by estado_id and/or cidade_id.
func ListarRestaurantesHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantes, err := db.ListRestaurantes(queryID(r, "estado_id"), queryID(r, "cidade_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, restaurantes)
	}
}

// AtualizarRestauranteHandler replaces all fields of a restaurant after
// re-running the creation validation.
func AtualizarRestauranteHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var p models.RestauranteCreateIDs
		if !decodeBody(w, r, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			respondError(w, err)
			return
		}

		if err := db.UpdateRestaurante(id, p.Nome, p.EstadoID, p.CidadeID, p.CardapioPrincipal); err != nil {
			respondError(w, err)
			return
		}

		rest, err := db.GetRestaurante(id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, rest)
	}
}

// DeletarRestauranteHandler removes a restaurant from the catalog.
func DeletarRestauranteHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := db.DeleteRestaurante(id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// espelharDocumento writes the document form of a newly created restaurant.
// The two stores are independent: a failure here is logged and the catalog
// row stands, so the document store can lag behind the catalog.
func espelharDocumento(ctx context.Context, docs docstore.Store, rest *models.Restaurante,
	avaliacoes, fotos []string, horario *models.HorarioFuncionamento, coords *models.Coordenadas) {

	doc := models.RestauranteDoc{
		Nome:              rest.Nome,
		Estado:            rest.EstadoNome,
		Cidade:            rest.CidadeNome,
		CardapioPrincipal: rest.CardapioPrincipal,
		Avaliacoes:        avaliacoes,
		Fotos:             fotos,
		Coordenadas:       coords,
	}
	if horario != nil {
		doc.Horario = *horario
	}

	if err := docs.InsertRestaurante(ctx, doc); err != nil {
		log.Printf("document mirror failed for %q: %v", rest.Nome, err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

func queryID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return id
}
