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

const checkoutSessionColumns = `id, created_at, updated_at, user_id, payment_status, store_credit_reserved,
	credit_restored, order_id`

type CheckoutSessionRepository struct {
	conn uow.DBTX
}

func NewCheckoutSessionRepository(conn uow.DBTX) *CheckoutSessionRepository {
	return &CheckoutSessionRepository{conn: conn}
}

func (r *CheckoutSessionRepository) Create(
	ctx context.Context,
	args repoargs.CreateCheckoutSession,
) (*domain.CheckoutSession, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO checkout_sessions (id, user_id, store_credit_reserved)
		VALUES ($1, $2, $3)
		RETURNING `+checkoutSessionColumns, args.ID, args.UserID, args.StoreCreditReserved)
	session, err := scanCheckoutSession(row)
	if err != nil {
		return nil, convertErr(err, "creating checkout session `%s`", args.ID)
	}
	return session, nil
}

func (r *CheckoutSessionRepository) FindByID(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+checkoutSessionColumns+` FROM checkout_sessions WHERE id = $1`, id)
	session, err := scanCheckoutSession(row)
	if err != nil {
		return nil, convertErr(err, "finding checkout session `%s`", id)
	}
	return session, nil
}

// MarkPaid переводит сессию PENDING -> PAID. Если сессия уже не в PENDING, возвращает domain.ErrStateConflict.
func (r *CheckoutSessionRepository) MarkPaid(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	return r.transition(ctx, id, domain.PaymentStatusPaid)
}

// MarkFailed переводит сессию PENDING -> FAILED. Если сессия уже не в PENDING, возвращает domain.ErrStateConflict.
func (r *CheckoutSessionRepository) MarkFailed(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	return r.transition(ctx, id, domain.PaymentStatusFailed)
}

func (r *CheckoutSessionRepository) transition(
	ctx context.Context,
	id string,
	to domain.PaymentStatusType,
) (*domain.CheckoutSession, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE checkout_sessions SET payment_status = $2, updated_at = NOW()
		WHERE id = $1 AND payment_status = 'PENDING'
		RETURNING `+checkoutSessionColumns, id, string(to))
	session, err := scanCheckoutSession(row)
	if err != nil {
		return nil, convertErr(r.explainMiss(ctx, id, err), "marking checkout session `%s` as %s", id, to)
	}
	return session, nil
}

// LinkOrder связывает сессию с созданным заказом.
func (r *CheckoutSessionRepository) LinkOrder(ctx context.Context, id string, orderID uuid.UUID) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE checkout_sessions SET order_id = $2, updated_at = NOW()
		WHERE id = $1 AND order_id IS NULL`, id, orderID)
	if err != nil {
		return convertErr(err, "linking checkout session `%s` to order %s", id, orderID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(r.explainMiss(ctx, id, pgx.ErrNoRows), "linking checkout session `%s`", id)
	}
	return nil
}

// ReleaseReservation помечает резерв store credit сессии как возвращенный. Возвращает сессию с суммой резерва,
// которую нужно вернуть на баланс. Резерв оплаченной или связанной с заказом сессии уже потрачен и не
// возвращается. В этом случае, как и при повторном вызове, возвращается domain.ErrStateConflict.
func (r *CheckoutSessionRepository) ReleaseReservation(
	ctx context.Context,
	id string,
) (*domain.CheckoutSession, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE checkout_sessions SET credit_restored = TRUE, updated_at = NOW()
		WHERE id = $1 AND credit_restored = FALSE AND payment_status <> 'PAID' AND order_id IS NULL
		RETURNING `+checkoutSessionColumns, id)
	session, err := scanCheckoutSession(row)
	if err != nil {
		return nil, convertErr(r.explainMiss(ctx, id, err), "releasing reservation of session `%s`", id)
	}
	return session, nil
}

// RetakeReservation снимает отметку о возврате резерва. Используется, когда после неудачной попытки
// материализации оплата все-таки прошла и резерв нужно занять снова.
func (r *CheckoutSessionRepository) RetakeReservation(
	ctx context.Context,
	id string,
) (*domain.CheckoutSession, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE checkout_sessions SET credit_restored = FALSE, updated_at = NOW()
		WHERE id = $1 AND credit_restored = TRUE
		RETURNING `+checkoutSessionColumns, id)
	session, err := scanCheckoutSession(row)
	if err != nil {
		return nil, convertErr(r.explainMiss(ctx, id, err), "retaking reservation of session `%s`", id)
	}
	return session, nil
}

// explainMiss отличает отсутствие записи от условного UPDATE, не нашедшего строку в нужном состоянии.
func (r *CheckoutSessionRepository) explainMiss(ctx context.Context, id string, err error) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	var exists bool
	if existsErr := r.conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM checkout_sessions WHERE id = $1)`, id,
	).Scan(&exists); existsErr != nil {
		return existsErr //nolint:wrapcheck
	}
	if exists {
		return fmt.Errorf("checkout session `%s`: %w", id, domain.ErrStateConflict)
	}
	return err
}

func scanCheckoutSession(row pgx.Row) (*domain.CheckoutSession, error) {
	var session domain.CheckoutSession
	var status string
	var orderID uuid.NullUUID
	if err := row.Scan(
		&session.ID,
		&session.CreatedAt,
		&session.UpdatedAt,
		&session.UserID,
		&status,
		&session.StoreCreditReserved,
		&session.CreditRestored,
		&orderID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	session.PaymentStatus = domain.PaymentStatusType(status)
	if orderID.Valid {
		session.OrderID = &orderID.UUID
	}
	return &session, nil
}
