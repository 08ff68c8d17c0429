package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const commissionColumns = `id, created_at, order_id, referrer_id, buyer_id, rate, amount, status`

type CommissionRepository struct {
	conn uow.DBTX
}

func NewCommissionRepository(conn uow.DBTX) *CommissionRepository {
	return &CommissionRepository{conn: conn}
}

// Create создает выплаченную комиссию. На один заказ допускается одна комиссия, повтор вернет
// domain.ErrDuplicateKey.
func (c *CommissionRepository) Create(ctx context.Context, args repoargs.CreateCommission) (*domain.Commission, error) {
	row := c.conn.QueryRow(ctx, `
		INSERT INTO commissions (order_id, referrer_id, buyer_id, rate, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+commissionColumns,
		args.OrderID, args.ReferrerID, args.BuyerID, args.Rate, args.Amount, string(domain.CommissionStatusPaid))
	commission, err := scanCommission(row)
	if err != nil {
		return nil, convertErr(err, "creating commission for order %s", args.OrderID)
	}
	return commission, nil
}

func (c *CommissionRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Commission, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+commissionColumns+` FROM commissions WHERE order_id = $1`, orderID)
	commission, err := scanCommission(row)
	if err != nil {
		return nil, convertErr(err, "finding commission for order %s", orderID)
	}
	return commission, nil
}

func scanCommission(row pgx.Row) (*domain.Commission, error) {
	var commission domain.Commission
	var status string
	if err := row.Scan(
		&commission.ID,
		&commission.CreatedAt,
		&commission.OrderID,
		&commission.ReferrerID,
		&commission.BuyerID,
		&commission.Rate,
		&commission.Amount,
		&status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	commission.Status = domain.CommissionStatusType(status)
	return &commission, nil
}
