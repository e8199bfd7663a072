package database

// CreateTables creates the catalog tables if they do not exist. The unique
// indexes on estados.nome and (cidades.nome, estado_id) back the
// get-or-create contract: a racing duplicate insert is rejected by the
// store and the loser falls back to a lookup.
func (db *DB) CreateTables() error {
	var stmts []string

	if db.Driver == "postgres" {
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS estados (
				id   SERIAL PRIMARY KEY,
				nome TEXT NOT NULL UNIQUE
			)`,
			`CREATE TABLE IF NOT EXISTS cidades (
				id        SERIAL PRIMARY KEY,
				nome      TEXT NOT NULL,
				estado_id INTEGER NOT NULL REFERENCES estados(id),
				UNIQUE (nome, estado_id)
			)`,
			`CREATE TABLE IF NOT EXISTS restaurantes (
				id                 SERIAL PRIMARY KEY,
				nome               TEXT NOT NULL,
				estado_id          INTEGER NOT NULL REFERENCES estados(id),
				cidade_id          INTEGER NOT NULL REFERENCES cidades(id),
				cardapio_principal TEXT NOT NULL
			)`,
		}
	} else {
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS estados (
				id   INTEGER PRIMARY KEY AUTOINCREMENT,
				nome TEXT NOT NULL UNIQUE
			)`,
			`CREATE TABLE IF NOT EXISTS cidades (
				id        INTEGER PRIMARY KEY AUTOINCREMENT,
				nome      TEXT NOT NULL,
				estado_id INTEGER NOT NULL,
				FOREIGN KEY (estado_id) REFERENCES estados(id),
				UNIQUE (nome, estado_id)
			)`,
			`CREATE TABLE IF NOT EXISTS restaurantes (
				id                 INTEGER PRIMARY KEY AUTOINCREMENT,
				nome               TEXT NOT NULL,
				estado_id          INTEGER NOT NULL,
				cidade_id          INTEGER NOT NULL,
				cardapio_principal TEXT NOT NULL,
				FOREIGN KEY (estado_id) REFERENCES estados(id),
				FOREIGN KEY (cidade_id) REFERENCES cidades(id)
			)`,
		}
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
