package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fsdevblog/groph-store/internal/domain"
)

const (
	MetaProductID = "product_id"
	MetaSize      = "size"
)

var (
	skuPattern  = regexp.MustCompile(`(?i)sku:\s*(\d+)`)
	sizePattern = regexp.MustCompile(`(?i)size:\s*([^|,]+)`)
)

// ResolutionSource откуда удалось восстановить товар и размер для позиции оплаченной сессии.
type ResolutionSource int

const (
	ResolutionUnresolved ResolutionSource = iota
	ResolutionPriceMetadata
	ResolutionProductMetadata
	ResolutionDescription
)

func (s ResolutionSource) String() string {
	switch s {
	case ResolutionPriceMetadata:
		return "price_metadata"
	case ResolutionProductMetadata:
		return "product_metadata"
	case ResolutionDescription:
		return "description"
	default:
		return "unresolved"
	}
}

type LineItemResolution struct {
	Source    ResolutionSource
	ProductID int64
	Size      string
}

func (r LineItemResolution) Resolved() bool {
	return r.Source != ResolutionUnresolved
}

// ResolveLineItem сопоставляет позицию провайдера с товаром. Стратегии проверяются по порядку:
// metadata цены, metadata продукта, разбор описания вида `Size: M | SKU: 42`.
func ResolveLineItem(item domain.PaymentLineItem) LineItemResolution {
	if id, size, ok := fromMetadata(item.PriceMetadata); ok {
		return LineItemResolution{Source: ResolutionPriceMetadata, ProductID: id, Size: size}
	}
	if id, size, ok := fromMetadata(item.ProductMetadata); ok {
		return LineItemResolution{Source: ResolutionProductMetadata, ProductID: id, Size: size}
	}
	if id, size, ok := fromDescription(item.Description); ok {
		return LineItemResolution{Source: ResolutionDescription, ProductID: id, Size: size}
	}
	return LineItemResolution{Source: ResolutionUnresolved}
}

func fromMetadata(meta map[string]string) (int64, string, bool) {
	rawID, ok := meta[MetaProductID]
	if !ok {
		return 0, "", false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return 0, "", false
	}
	size := strings.TrimSpace(meta[MetaSize])
	if size == "" {
		return 0, "", false
	}
	return id, size, true
}

func fromDescription(description string) (int64, string, bool) {
	skuMatch := skuPattern.FindStringSubmatch(description)
	sizeMatch := sizePattern.FindStringSubmatch(description)
	if skuMatch == nil || sizeMatch == nil {
		return 0, "", false
	}
	id, err := strconv.ParseInt(skuMatch[1], 10, 64)
	if err != nil {
		return 0, "", false
	}
	size := strings.TrimSpace(sizeMatch[1])
	if size == "" {
		return 0, "", false
	}
	return id, size, true
}

// lineItemDescription описание позиции, которое понимает fromDescription.
func lineItemDescription(size string, productID int64) string {
	return "Size: " + size + " | SKU: " + strconv.FormatInt(productID, 10)
}
