package repoargs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCheckoutSession struct {
	ID                  string
	UserID              int64
	StoreCreditReserved decimal.Decimal
}

type CreateCommission struct {
	OrderID    uuid.UUID
	ReferrerID int64
	BuyerID    int64
	Rate       decimal.Decimal
	Amount     decimal.Decimal
}
