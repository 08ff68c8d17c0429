package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Email           string
	Name            string
	Tier            UserTier
	StoreCredit     decimal.Decimal
	ReferralCode    string
	ReferrerID      *int64
	ReferralCount   int
	IsReferralValid bool
}

// ProductSize единица складского учета: вариант товара со своей ценой и остатком.
type ProductSize struct {
	Label    string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Product struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Sizes     []ProductSize
	InStock   bool
	Reference map[string]string
}

// DecrementSize уменьшает остаток размера size на quantity и пересчитывает InStock.
// Остаток может уйти в минус: резервирования на этапе создания сессии оплаты нет.
func (p *Product) DecrementSize(size string, quantity int) error {
	idx := -1
	for i, s := range p.Sizes {
		if s.Label == size {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("product %d size `%s`: %w", p.ID, size, ErrRecordNotFound)
	}
	p.Sizes[idx].Quantity -= quantity
	p.InStock = p.recomputeInStock()
	return nil
}

func (p *Product) recomputeInStock() bool {
	for _, s := range p.Sizes {
		if s.Quantity > 0 {
			return true
		}
	}
	return false
}

type CheckoutSession struct {
	ID                  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	UserID              int64
	PaymentStatus       PaymentStatusType
	StoreCreditReserved decimal.Decimal
	CreditRestored      bool
	OrderID             *uuid.UUID
}

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type Order struct {
	ID                 uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	UserID             int64
	CheckoutSessionID  string
	Email              string
	Status             OrderStatusType
	ShippingAddress    Address
	Currency           string
	Subtotal           decimal.Decimal
	Shipping           decimal.Decimal
	CreditApplied      decimal.Decimal
	Total              decimal.Decimal
	PaymentIntentID    string
	ShipstationOrderID string
	CarrierCode        string
	TrackingNumber     string
	LabelURL           string
	Items              []OrderItem
}

// InStatus проверяет, находится ли заказ в одном из статусов statuses.
func (o *Order) InStatus(statuses ...OrderStatusType) bool {
	for _, s := range statuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

// OrderItem снимок позиции на момент оплаты. Цены никогда не пересчитываются из каталога.
type OrderItem struct {
	ID              int64
	OrderID         uuid.UUID
	ProductID       int64
	Name            string
	Size            string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountedPrice decimal.Decimal
}

type Commission struct {
	ID         int64
	CreatedAt  time.Time
	OrderID    uuid.UUID
	ReferrerID int64
	BuyerID    int64
	Rate       decimal.Decimal
	Amount     decimal.Decimal
	Status     CommissionStatusType
}
