package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Дубликаты ключей (uniqueViolationCode) возвращаются как ErrDuplicateKey.
//   - Нарушение внешнего ключа (foreignKeyViolationCode) означает отсутствие связанной записи - ErrRecordNotFound.
//   - Нарушение CHECK ограничения (например отрицательный store_credit) - ErrValidation.
//   - Все остальные ошибки возвращаются как ErrUnknown, оригинальная ошибка остается в цепочке.
//
// Доменные ошибки, уже завернутые в err, пробрасываются как есть.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	for _, known := range []error{
		domain.ErrRecordNotFound,
		domain.ErrStateConflict,
		domain.ErrInsufficientCredit,
		domain.ErrValidation,
	} {
		if errors.Is(err, known) {
			return fmt.Errorf("[repository/%s] %w", msg, err)
		}
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		case checkViolationCode:
			errType = domain.ErrValidation
		}
	}

	return fmt.Errorf("[repository/%s] %w: %w", msg, errType, err)
}
