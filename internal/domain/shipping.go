package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentItem struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	WeightOz  float64
}

// ShipmentOrderRequest заказ в формате службы доставки.
type ShipmentOrderRequest struct {
	OrderNumber    string
	OrderKey       string
	OrderDate      time.Time
	CustomerEmail  string
	BillTo         Address
	ShipTo         Address
	Items          []ShipmentItem
	AmountPaid     decimal.Decimal
	ShippingAmount decimal.Decimal
	WeightOz       float64
}

type ShipmentOrder struct {
	ProviderOrderID string          `json:"providerOrderId"`
	OrderNumber     string          `json:"orderNumber"`
	OrderKey        string          `json:"orderKey"`
	Status          string          `json:"status"`
	OrderDate       time.Time       `json:"orderDate"`
	ShipTo          Address         `json:"shipTo"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
}

type ShipmentOrderQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ShipmentOrderList struct {
	Orders []ShipmentOrder
	Total  int
	Page   int
	Pages  int
}

type RateQuery struct {
	CarrierCode    string
	FromPostalCode string
	ToCity         string
	ToState        string
	ToPostalCode   string
	ToCountry      string
	WeightOz       float64
}

type ShippingRate struct {
	ServiceName  string
	ServiceCode  string
	ShipmentCost decimal.Decimal
	OtherCost    decimal.Decimal
}

// Total полная стоимость доставки по тарифу.
func (r ShippingRate) Total() decimal.Decimal {
	return r.ShipmentCost.Add(r.OtherCost)
}

type LabelRequest struct {
	ProviderOrderID string
	CarrierCode     string
	ServiceCode     string
	ShipDate        time.Time
	WeightOz        float64
	TestLabel       bool
}

type ShipmentLabel struct {
	ShipmentID     string
	TrackingNumber string
	// LabelData PDF этикетки в base64.
	LabelData      string
	ShipmentCost   decimal.Decimal
}

type MarkShippedRequest struct {
	ProviderOrderID string
	CarrierCode     string
	TrackingNumber  string
	ShipDate        time.Time
	NotifyCustomer  bool
}

type Carrier struct {
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

type Warehouse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	IsDefault     bool    `json:"isDefault"`
	OriginAddress Address `json:"originAddress"`
}
