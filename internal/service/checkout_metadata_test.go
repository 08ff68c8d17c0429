package service

import (
	"testing"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CheckoutMetadataTestSuite struct {
	suite.Suite
}

func TestCheckoutMetadataSuite(t *testing.T) {
	suite.Run(t, new(CheckoutMetadataTestSuite))
}

func (s *CheckoutMetadataTestSuite) TestEncodeDecode() {
	meta := CheckoutMetadata{
		UserID:      42,
		StoreCredit: decimal.RequireFromString("12.5"),
		Shipping:    decimal.NewFromInt(7),
		Items: []MetadataItem{
			{ProductID: 1, Size: "M", Quantity: 2},
			{ProductID: 3, Size: "XL", Quantity: 1},
		},
	}
	encoded := meta.Encode()
	s.Equal("42", encoded["user_id"])
	s.Equal("12.50", encoded["store_credit"])
	s.Equal("2", encoded["item_count"])
	s.Equal("3|XL|1", encoded["item_1"])

	decoded, err := DecodeCheckoutMetadata(encoded)
	s.Require().NoError(err)
	s.Equal(meta.UserID, decoded.UserID)
	s.True(meta.StoreCredit.Equal(decoded.StoreCredit))
	s.True(meta.Shipping.Equal(decoded.Shipping))
	s.Equal(meta.Items, decoded.Items)
}

func (s *CheckoutMetadataTestSuite) TestDecodeInvalid() {
	cases := []struct {
		name string
		meta map[string]string
	}{
		{name: "no user", meta: map[string]string{}},
		{name: "bad credit", meta: map[string]string{"user_id": "1", "store_credit": "ten"}},
		{name: "too many items", meta: map[string]string{"user_id": "1", "item_count": "41"}},
		{name: "missing item", meta: map[string]string{"user_id": "1", "item_count": "1"}},
		{name: "bad quantity", meta: map[string]string{"user_id": "1", "item_count": "1", "item_0": "1|M|0"}},
		{name: "bad product", meta: map[string]string{"user_id": "1", "item_count": "1", "item_0": "x|M|1"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := DecodeCheckoutMetadata(tc.meta)
			s.ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *CheckoutMetadataTestSuite) TestResolveLineItem() {
	cases := []struct {
		name   string
		item   domain.PaymentLineItem
		source ResolutionSource
		id     int64
		size   string
	}{
		{
			name: "price metadata",
			item: domain.PaymentLineItem{
				PriceMetadata:   map[string]string{MetaProductID: "5", MetaSize: "S"},
				ProductMetadata: map[string]string{MetaProductID: "6", MetaSize: "L"},
			},
			source: ResolutionPriceMetadata, id: 5, size: "S",
		},
		{
			name:   "product metadata",
			item:   domain.PaymentLineItem{ProductMetadata: map[string]string{MetaProductID: "6", MetaSize: "L"}},
			source: ResolutionProductMetadata, id: 6, size: "L",
		},
		{
			name: "description",
			item: domain.PaymentLineItem{
				Description:     "Size: XL | SKU: 77",
				ProductMetadata: map[string]string{MetaProductID: "oops"},
			},
			source: ResolutionDescription, id: 77, size: "XL",
		},
		{
			name:   "description in other case",
			item:   domain.PaymentLineItem{Description: "sku:12, size: One Size"},
			source: ResolutionDescription, id: 12, size: "One Size",
		},
		{
			name:   "unresolved",
			item:   domain.PaymentLineItem{Description: "Gift wrap"},
			source: ResolutionUnresolved,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res := ResolveLineItem(tc.item)
			s.Equal(tc.source, res.Source)
			s.Equal(tc.id, res.ProductID)
			s.Equal(tc.size, res.Size)
		})
	}
}

func (s *CheckoutMetadataTestSuite) TestDescriptionRoundTrip() {
	res := ResolveLineItem(domain.PaymentLineItem{Description: lineItemDescription("M", 10)})
	s.Equal(ResolutionDescription, res.Source)
	s.Equal(int64(10), res.ProductID)
	s.Equal("M", res.Size)
}
