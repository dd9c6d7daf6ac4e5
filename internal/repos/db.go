package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products. catalog_id is the storefront-facing id; the CHECK keeps
-- committed stock from ever going negative.
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  catalog_id INTEGER NOT NULL UNIQUE,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  category TEXT,
  image_url TEXT,
  stock INTEGER NOT NULL DEFAULT 10 CHECK (stock >= 0)
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`
	_, err := db.Exec(schema)
	return err
}
