package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, email, name, tier, store_credit, referral_code, referrer_id,
	referral_count, is_referral_valid`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// DecrementStoreCredit атомарно уменьшает баланс на amount, если баланса хватает. Возвращает новый баланс.
// Ошибки: domain.ErrInsufficientCredit если баланса не хватает, domain.ErrRecordNotFound если юзера нет.
func (u *UserRepository) DecrementStoreCredit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := u.conn.QueryRow(ctx, `
		UPDATE users SET store_credit = store_credit - $2, updated_at = NOW()
		WHERE id = $1 AND store_credit >= $2
		RETURNING store_credit`, userID, amount,
	).Scan(&balance)

	if errors.Is(err, pgx.ErrNoRows) {
		// отличаем нехватку баланса от отсутствия юзера.
		if _, findErr := u.FindByID(ctx, userID); findErr != nil {
			return decimal.Zero, findErr
		}
		err = fmt.Errorf("user %d: %w", userID, domain.ErrInsufficientCredit)
	}
	if err != nil {
		return decimal.Zero, convertErr(err, "decrementing store credit of user %d by %s", userID, amount)
	}
	return balance, nil
}

// IncrementStoreCredit безусловно увеличивает баланс на amount. Возвращает новый баланс.
func (u *UserRepository) IncrementStoreCredit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := u.conn.QueryRow(ctx, `
		UPDATE users SET store_credit = store_credit + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING store_credit`, userID, amount,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "incrementing store credit of user %d by %s", userID, amount)
	}
	return balance, nil
}

// MarkReferralValid переводит is_referral_valid из false в true для юзера, у которого есть реферер.
// Возвращает true только для вызова, который действительно выполнил переход.
func (u *UserRepository) MarkReferralValid(ctx context.Context, userID int64) (bool, error) {
	var id int64
	err := u.conn.QueryRow(ctx, `
		UPDATE users SET is_referral_valid = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_referral_valid = FALSE AND referrer_id IS NOT NULL
		RETURNING id`, userID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, convertErr(err, "marking referral valid for user %d", userID)
	}
	return true, nil
}

// IncrementReferralCount увеличивает счетчик подтвержденных рефералов и возвращает обновленного юзера.
func (u *UserRepository) IncrementReferralCount(ctx context.Context, userID int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users SET referral_count = referral_count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, userID)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "incrementing referral count of user %d", userID)
	}
	return user, nil
}

func (u *UserRepository) UpdateTier(ctx context.Context, userID int64, tier domain.UserTier) error {
	tag, err := u.conn.Exec(ctx,
		`UPDATE users SET tier = $2, updated_at = NOW() WHERE id = $1`, userID, string(tier))
	if err != nil {
		return convertErr(err, "updating tier of user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating tier of user %d", userID)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var tier string
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Email,
		&user.Name,
		&tier,
		&user.StoreCredit,
		&user.ReferralCode,
		&user.ReferrerID,
		&user.ReferralCount,
		&user.IsReferralValid,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	user.Tier = domain.UserTier(tier)
	return &user, nil
}
