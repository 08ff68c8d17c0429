package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, user_id, checkout_session_id, email, status, shipping_address,
	currency, subtotal, shipping, credit_applied, total, payment_intent_id, shipstation_order_id, carrier_code,
	tracking_number, label_url`

const orderItemColumns = `id, order_id, product_id, name, size, quantity, unit_price, discounted_price`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create создает заказ. Повторная попытка для той же checkout-сессии вернет domain.ErrDuplicateKey.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `
		INSERT INTO orders (id, user_id, checkout_session_id, email, status, shipping_address, currency, subtotal,
			shipping, credit_applied, total, payment_intent_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+orderColumns,
		args.ID,
		args.UserID,
		args.CheckoutSessionID,
		args.Email,
		string(args.Status),
		args.ShippingAddress,
		args.Currency,
		args.Subtotal,
		args.Shipping,
		args.CreditApplied,
		args.Total,
		args.PaymentIntentID,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for checkout session `%s`", args.CheckoutSessionID)
	}
	return order, nil
}

// CreateItems вставляет позиции заказа одним батчем. Возвращает последнюю ошибку батча, если она была.
func (o *OrderRepository) CreateItems(
	ctx context.Context,
	orderID uuid.UUID,
	items []repoargs.CreateOrderItem,
) ([]domain.OrderItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	batch := new(pgx.Batch)
	for _, item := range items {
		batch.Queue(`
			INSERT INTO order_items (order_id, product_id, name, size, quantity, unit_price, discounted_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+orderItemColumns,
			orderID, item.ProductID, item.Name, item.Size, item.Quantity, item.UnitPrice, item.DiscountedPrice,
		)
	}

	results := o.conn.SendBatch(ctx, batch)

	var created = make([]domain.OrderItem, 0, len(items))
	var batchErr error
	for i := range items {
		item, scanErr := scanOrderItem(results.QueryRow())
		if scanErr != nil {
			batchErr = convertErr(scanErr, "creating item #%d of order %s", i, orderID)
			continue
		}
		created = append(created, *item)
	}
	if closeErr := results.Close(); closeErr != nil && batchErr == nil {
		batchErr = convertErr(closeErr, "closing order items batch of order %s", orderID)
	}
	if batchErr != nil {
		return nil, batchErr
	}
	return created, nil
}

// FindByID возвращает заказ вместе с позициями.
func (o *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order %s", id)
	}
	if loadErr := o.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

func (o *OrderRepository) FindByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE checkout_session_id = $1`, sessionID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by checkout session `%s`", sessionID)
	}
	if loadErr := o.loadItems(ctx, []*domain.Order{order}); loadErr != nil {
		return nil, loadErr
	}
	return order, nil
}

// ListByUser возвращает заказы юзера с позициями, отсортированные по дате создания по убыванию.
func (o *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "listing orders of user %d", userID)
	}
	defer rows.Close()

	var orders = make([]domain.Order, 0)
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning order of user %d", userID)
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing orders of user %d", userID)
	}

	ptrs := make([]*domain.Order, len(orders))
	for i := range orders {
		ptrs[i] = &orders[i]
	}
	if loadErr := o.loadItems(ctx, ptrs); loadErr != nil {
		return nil, loadErr
	}
	return orders, nil
}

// UpdateStatus переводит заказ в статус to, только если текущий статус входит в from.
// Если заказ в другом статусе, возвращает domain.ErrStateConflict.
func (o *OrderRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from []domain.OrderStatusType,
	to domain.OrderStatusType,
) (*domain.Order, error) {
	fromStr := make([]string, len(from))
	for i, s := range from {
		fromStr[i] = string(s)
	}

	row := o.conn.QueryRow(ctx, `
		UPDATE orders SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status::text = ANY($3::text[])
		RETURNING `+orderColumns, id, string(to), fromStr)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(o.explainMiss(ctx, id, err), "moving order %s to %s", id, to)
	}
	return order, nil
}

// SetShipment сохраняет id заказа в службе доставки.
func (o *OrderRepository) SetShipment(ctx context.Context, id uuid.UUID, shipstationOrderID string) error {
	tag, err := o.conn.Exec(ctx, `
		UPDATE orders SET shipstation_order_id = $2, updated_at = NOW() WHERE id = $1`, id, shipstationOrderID)
	if err != nil {
		return convertErr(err, "setting shipment of order %s", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "setting shipment of order %s", id)
	}
	return nil
}

// SetLabel сохраняет трек-номер, перевозчика и ссылку на этикетку. Пустые значения не затирают сохраненные.
func (o *OrderRepository) SetLabel(ctx context.Context, id uuid.UUID, args repoargs.SetLabel) error {
	tag, err := o.conn.Exec(ctx, `
		UPDATE orders SET
			tracking_number = COALESCE(NULLIF($2, ''), tracking_number),
			carrier_code = COALESCE(NULLIF($3, ''), carrier_code),
			label_url = COALESCE(NULLIF($4, ''), label_url),
			updated_at = NOW()
		WHERE id = $1`, id, args.TrackingNumber, args.CarrierCode, args.LabelURL)
	if err != nil {
		return convertErr(err, "setting label of order %s", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "setting label of order %s", id)
	}
	return nil
}

func (o *OrderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(orders))
	byID := make(map[uuid.UUID]*domain.Order, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		byID[order.ID] = order
		order.Items = make([]domain.OrderItem, 0)
	}

	rows, err := o.conn.Query(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return convertErr(err, "loading order items")
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanOrderItem(rows)
		if scanErr != nil {
			return convertErr(scanErr, "scanning order item")
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, *item)
		}
	}
	return convertErr(rows.Err(), "loading order items")
}

func (o *OrderRepository) explainMiss(ctx context.Context, id uuid.UUID, err error) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	var exists bool
	if existsErr := o.conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id,
	).Scan(&exists); existsErr != nil {
		return existsErr //nolint:wrapcheck
	}
	if exists {
		return fmt.Errorf("order %s: %w", id, domain.ErrStateConflict)
	}
	return err
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var status string
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserID,
		&order.CheckoutSessionID,
		&order.Email,
		&status,
		&order.ShippingAddress,
		&order.Currency,
		&order.Subtotal,
		&order.Shipping,
		&order.CreditApplied,
		&order.Total,
		&order.PaymentIntentID,
		&order.ShipstationOrderID,
		&order.CarrierCode,
		&order.TrackingNumber,
		&order.LabelURL,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	order.Status = domain.OrderStatusType(status)
	return &order, nil
}

func scanOrderItem(row pgx.Row) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := row.Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.Name,
		&item.Size,
		&item.Quantity,
		&item.UnitPrice,
		&item.DiscountedPrice,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &item, nil
}
