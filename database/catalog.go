package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"saborhub/models"

	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// InsertEstado inserts a state or, if one with that name already exists,
// returns the existing id. The fallback also covers the race where two
// requests insert the same name at once: the loser's insert hits the
// unique index and resolves to the winner's row.
func (db *DB) InsertEstado(nome string) (int64, error) {
	var id int64
	err := db.QueryRow(`INSERT INTO estados (nome) VALUES ($1) RETURNING id`, nome).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !isUniqueViolation(err) {
		return 0, err
	}

	err = db.QueryRow(`SELECT id FROM estados WHERE nome = $1`, nome).Scan(&id)
	return id, err
}

// ListEstados returns all states sorted by name.
func (db *DB) ListEstados() ([]models.Estado, error) {
	rows, err := db.Query(`SELECT id, nome FROM estados ORDER BY nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estados := []models.Estado{}
	for rows.Next() {
		var e models.Estado
		if err := rows.Scan(&e.ID, &e.Nome); err != nil {
			return nil, err
		}
		estados = append(estados, e)
	}
	return estados, rows.Err()
}

// InsertCidade inserts a city under an existing state, with get-or-create
// semantics on (nome, estado_id).
func (db *DB) InsertCidade(nome string, estadoID int64) (int64, error) {
	ok, err := db.estadoExiste(estadoID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &models.ReferenceError{Msg: "estado_id inexistente"}
	}

	var id int64
	err = db.QueryRow(`INSERT INTO cidades (nome, estado_id) VALUES ($1, $2) RETURNING id`, nome, estadoID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !isUniqueViolation(err) {
		return 0, err
	}

	err = db.QueryRow(`SELECT id FROM cidades WHERE nome = $1 AND estado_id = $2`, nome, estadoID).Scan(&id)
	return id, err
}

// ListCidades returns cities sorted by name, filtered by state when
// estadoID is non-zero.
func (db *DB) ListCidades(estadoID int64) ([]models.Cidade, error) {
	query := `SELECT id, nome, estado_id FROM cidades`
	var args []interface{}
	if estadoID != 0 {
		query += ` WHERE estado_id = $1`
		args = append(args, estadoID)
	}
	query += ` ORDER BY nome`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cidades := []models.Cidade{}
	for rows.Next() {
		var c models.Cidade
		if err := rows.Scan(&c.ID, &c.Nome, &c.EstadoID); err != nil {
			return nil, err
		}
		cidades = append(cidades, c)
	}
	return cidades, rows.Err()
}

// InsertRestaurante inserts a restaurant after validating that the state
// exists and that the city exists under that same state. Restaurants are
// not deduplicated by name.
func (db *DB) InsertRestaurante(nome string, estadoID, cidadeID int64, cardapio string) (int64, error) {
	if err := db.validarReferencias(estadoID, cidadeID); err != nil {
		return 0, err
	}

	var id int64
	err := db.QueryRow(`
		INSERT INTO restaurantes (nome, estado_id, cidade_id, cardapio_principal)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, nome, estadoID, cidadeID, cardapio).Scan(&id)
	return id, err
}

// InsertRestaurantePorNomes resolves or creates the state and the city by
// name, then inserts the restaurant. This path self-heals the hierarchy
// and can never fail on a missing reference.
func (db *DB) InsertRestaurantePorNomes(nome, estadoNome, cidadeNome, cardapio string) (int64, error) {
	estadoID, err := db.InsertEstado(estadoNome)
	if err != nil {
		return 0, err
	}
	cidadeID, err := db.InsertCidade(cidadeNome, estadoID)
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO restaurantes (nome, estado_id, cidade_id, cardapio_principal)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, nome, estadoID, cidadeID, cardapio).Scan(&id)
	return id, err
}

const restauranteSelect = `
	SELECT r.id,
	       r.nome,
	       r.cardapio_principal,
	       r.estado_id,
	       e.nome AS estado_nome,
	       r.cidade_id,
	       c.nome AS cidade_nome
	  FROM restaurantes r
	  JOIN estados e ON e.id = r.estado_id
	  JOIN cidades c ON c.id = r.cidade_id
`

// GetRestaurante returns a restaurant joined with its state and city
// names, or models.ErrNotFound.
func (db *DB) GetRestaurante(id int64) (*models.Restaurante, error) {
	var r models.Restaurante
	err := db.QueryRow(restauranteSelect+` WHERE r.id = $1`, id).
		Scan(&r.ID, &r.Nome, &r.CardapioPrincipal, &r.EstadoID, &r.EstadoNome, &r.CidadeID, &r.CidadeNome)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRestaurantes returns restaurants sorted by name, optionally filtered
// by state and/or city id (zero means no filter).
func (db *DB) ListRestaurantes(estadoID, cidadeID int64) ([]models.Restaurante, error) {
	var conds []string
	var args []interface{}
	idx := 1

	if estadoID != 0 {
		conds = append(conds, fmt.Sprintf("r.estado_id = $%d", idx))
		args = append(args, estadoID)
		idx++
	}
	if cidadeID != 0 {
		conds = append(conds, fmt.Sprintf("r.cidade_id = $%d", idx))
		args = append(args, cidadeID)
		idx++
	}

	query := restauranteSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY r.nome"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurantes := []models.Restaurante{}
	for rows.Next() {
		var r models.Restaurante
		if err := rows.Scan(&r.ID, &r.Nome, &r.CardapioPrincipal, &r.EstadoID, &r.EstadoNome, &r.CidadeID, &r.CidadeNome); err != nil {
			return nil, err
		}
		restaurantes = append(restaurantes, r)
	}
	return restaurantes, rows.Err()
}

// UpdateRestaurante replaces all mutable fields of a restaurant, re-running
// the same reference validation as creation.
func (db *DB) UpdateRestaurante(id int64, nome string, estadoID, cidadeID int64, cardapio string) error {
	if err := db.validarReferencias(estadoID, cidadeID); err != nil {
		return err
	}

	res, err := db.Exec(`
		UPDATE restaurantes
		   SET nome = $1, estado_id = $2, cidade_id = $3, cardapio_principal = $4
		 WHERE id = $5
	`, nome, estadoID, cidadeID, cardapio, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeleteRestaurante removes a restaurant, or returns models.ErrNotFound.
func (db *DB) DeleteRestaurante(id int64) error {
	res, err := db.Exec(`DELETE FROM restaurantes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (db *DB) estadoExiste(id int64) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM estados WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// validarReferencias checks that the state exists and that the city exists
// under that exact state. The two failures carry distinct messages so a
// caller can tell a missing state from a mismatched city.
func (db *DB) validarReferencias(estadoID, cidadeID int64) error {
	ok, err := db.estadoExiste(estadoID)
	if err != nil {
		return err
	}
	if !ok {
		return &models.ReferenceError{Msg: "estado_id inexistente"}
	}

	var one int
	err = db.QueryRow(`SELECT 1 FROM cidades WHERE id = $1 AND estado_id = $2`, cidadeID, estadoID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.ReferenceError{Msg: "cidade_id inexistente (ou não pertence ao estado_id informado)"}
	}
	return err
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// isUniqueViolation recognizes a unique-index rejection from either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
