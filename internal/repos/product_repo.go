package repos

import (
	"lojinha/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, catalog_id, name, price, COALESCE(category,'') AS category,
	         COALESCE(image_url,'') AS image_url, stock
	  FROM products
	  ORDER BY catalog_id
	`)
	return out, err
}

// Get looks a product up by its storefront catalog id.
// Returns sql.ErrNoRows when the id matches nothing.
func (r *ProductRepo) Get(catalogID int) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, catalog_id, name, price, COALESCE(category,'') AS category,
	         COALESCE(image_url,'') AS image_url, stock
	  FROM products
	  WHERE catalog_id = ?
	`, catalogID)
	return p, err
}

// DecrementStock subtracts qty units if enough stock exists, in a single
// conditional UPDATE. Concurrent checkouts for the last units race on this
// statement and at most one of them wins; the loser sees applied=false.
func (r *ProductRepo) DecrementStock(catalogID, qty int) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET stock = stock - ?
	  WHERE catalog_id = ? AND stock >= ?
	`, qty, catalogID, qty)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reset replaces the whole catalog with the given products (the
// popular-banco semantics: delete everything, insert the seed).
func (r *ProductRepo) Reset(products []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(`
		  INSERT INTO products(catalog_id, name, price, category, image_url, stock)
		  VALUES (?, ?, ?, ?, ?, ?)
		`, p.CatalogID, p.Name, p.Price, p.Category, p.ImageURL, p.Stock); err != nil {
			return err
		}
	}
	return tx.Commit()
}
