package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, name, sizes, in_stock, reference`

type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

func (p *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product by id %d", id)
	}
	return product, nil
}

// DecrementSizeQuantity уменьшает остаток размера size товара productID на quantity и пересчитывает in_stock.
// Строка товара блокируется до конца транзакции, поэтому метод нужно вызывать внутри uow.Do.
func (p *ProductRepository) DecrementSizeQuantity(
	ctx context.Context,
	productID int64,
	size string,
	quantity int,
) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, productID)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "locking product %d", productID)
	}

	if decErr := product.DecrementSize(size, quantity); decErr != nil {
		return nil, convertErr(decErr, "decrementing product %d", productID)
	}

	row = p.conn.QueryRow(ctx, `
		UPDATE products SET sizes = $2, in_stock = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+productColumns, productID, product.Sizes, product.InStock)
	updated, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "updating sizes of product %d", productID)
	}
	return updated, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Name,
		&product.Sizes,
		&product.InStock,
		&product.Reference,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &product, nil
}
