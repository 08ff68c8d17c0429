package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxCheckoutItems ограничение провайдера на число ключей metadata (50) минус служебные ключи с запасом.
const MaxCheckoutItems = 40

const (
	metaUserID      = "user_id"
	metaStoreCredit = "store_credit"
	metaShipping    = "shipping"
	metaItemCount   = "item_count"
	metaItemPrefix  = "item_"

	metaItemSeparator = "|"
)

type MetadataItem struct {
	ProductID int64
	Size      string
	Quantity  int
}

// CheckoutMetadata все, что нужно для материализации заказа без повторного чтения корзины.
type CheckoutMetadata struct {
	UserID      int64
	StoreCredit decimal.Decimal
	Shipping    decimal.Decimal
	Items       []MetadataItem
}

// Encode упаковывает metadata в плоскую map для провайдера.
func (m CheckoutMetadata) Encode() map[string]string {
	res := make(map[string]string, len(m.Items)+4) //nolint:mnd
	res[metaUserID] = strconv.FormatInt(m.UserID, 10)
	res[metaStoreCredit] = m.StoreCredit.StringFixed(2)
	res[metaShipping] = m.Shipping.StringFixed(2)
	res[metaItemCount] = strconv.Itoa(len(m.Items))
	for i, item := range m.Items {
		res[metaItemPrefix+strconv.Itoa(i)] = strings.Join([]string{
			strconv.FormatInt(item.ProductID, 10),
			item.Size,
			strconv.Itoa(item.Quantity),
		}, metaItemSeparator)
	}
	return res
}

// DecodeCheckoutMetadata разбирает metadata сессии. Ошибка оборачивает domain.ErrValidation.
func DecodeCheckoutMetadata(meta map[string]string) (*CheckoutMetadata, error) {
	userID, err := strconv.ParseInt(meta[metaUserID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("metadata %s `%s`: %w", metaUserID, meta[metaUserID], domain.ErrValidation)
	}
	credit, err := decimalOrZero(meta[metaStoreCredit])
	if err != nil {
		return nil, fmt.Errorf("metadata %s: %w", metaStoreCredit, domain.ErrValidation)
	}
	shipping, err := decimalOrZero(meta[metaShipping])
	if err != nil {
		return nil, fmt.Errorf("metadata %s: %w", metaShipping, domain.ErrValidation)
	}

	count := 0
	if raw, ok := meta[metaItemCount]; ok {
		if count, err = strconv.Atoi(raw); err != nil || count < 0 || count > MaxCheckoutItems {
			return nil, fmt.Errorf("metadata %s `%s`: %w", metaItemCount, raw, domain.ErrValidation)
		}
	}

	items := make([]MetadataItem, 0, count)
	for i := range count {
		key := metaItemPrefix + strconv.Itoa(i)
		item, itemErr := parseMetadataItem(meta[key])
		if itemErr != nil {
			return nil, fmt.Errorf("metadata %s: %w", key, itemErr)
		}
		items = append(items, *item)
	}

	return &CheckoutMetadata{
		UserID:      userID,
		StoreCredit: credit,
		Shipping:    shipping,
		Items:       items,
	}, nil
}

func parseMetadataItem(raw string) (*MetadataItem, error) {
	parts := strings.Split(raw, metaItemSeparator)
	if len(parts) != 3 { //nolint:mnd
		return nil, fmt.Errorf("item `%s`: %w", raw, domain.ErrValidation)
	}
	productID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("item product id `%s`: %w", parts[0], domain.ErrValidation)
	}
	quantity, err := strconv.Atoi(parts[2])
	if err != nil || quantity <= 0 {
		return nil, fmt.Errorf("item quantity `%s`: %w", parts[2], domain.ErrValidation)
	}
	return &MetadataItem{ProductID: productID, Size: parts[1], Quantity: quantity}, nil
}

func decimalOrZero(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw) //nolint:wrapcheck
}
