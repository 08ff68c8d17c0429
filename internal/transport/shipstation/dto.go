package shipstation

import (
	"time"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	weightUnitsOunces = "ounces"
	orderStatusAwait  = "awaiting_shipment"
	shipDateLayout    = "2006-01-02"
	orderDateLayout   = "2006-01-02T15:04:05.0000000"
)

type address struct {
	Name       string `json:"name"`
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func toAddress(a domain.Address) address {
	return address{
		Name:       a.Name,
		Street1:    a.Line1,
		Street2:    a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func (a address) toDomain() domain.Address {
	return domain.Address{
		Name:       a.Name,
		Line1:      a.Street1,
		Line2:      a.Street2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

type weight struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

func ounces(value float64) *weight {
	if value <= 0 {
		return nil
	}
	return &weight{Value: value, Units: weightUnitsOunces}
}

type orderItem struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Weight    *weight `json:"weight,omitempty"`
}

type createOrderRequest struct {
	OrderNumber    string      `json:"orderNumber"`
	OrderKey       string      `json:"orderKey"`
	OrderDate      string      `json:"orderDate"`
	OrderStatus    string      `json:"orderStatus"`
	CustomerEmail  string      `json:"customerEmail,omitempty"`
	BillTo         address     `json:"billTo"`
	ShipTo         address     `json:"shipTo"`
	Items          []orderItem `json:"items"`
	AmountPaid     float64     `json:"amountPaid"`
	ShippingAmount float64     `json:"shippingAmount"`
	Weight         *weight     `json:"weight,omitempty"`
}

func newCreateOrderRequest(req domain.ShipmentOrderRequest) createOrderRequest {
	items := make([]orderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderItem{
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			Weight:    ounces(item.WeightOz),
		}
	}
	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	return createOrderRequest{
		OrderNumber:    req.OrderNumber,
		OrderKey:       req.OrderKey,
		OrderDate:      orderDate.UTC().Format(orderDateLayout),
		OrderStatus:    orderStatusAwait,
		CustomerEmail:  req.CustomerEmail,
		BillTo:         toAddress(req.BillTo),
		ShipTo:         toAddress(req.ShipTo),
		Items:          items,
		AmountPaid:     req.AmountPaid.InexactFloat64(),
		ShippingAmount: req.ShippingAmount.InexactFloat64(),
		Weight:         ounces(req.WeightOz),
	}
}

type orderResponse struct {
	OrderID     int64           `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	OrderKey    string          `json:"orderKey"`
	OrderStatus string          `json:"orderStatus"`
	OrderDate   string          `json:"orderDate"`
	ShipTo      address         `json:"shipTo"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
}

func (o orderResponse) toDomain() domain.ShipmentOrder {
	// дата без зоны, в формате ShipStation
	orderDate, _ := time.Parse(orderDateLayout, o.OrderDate)
	return domain.ShipmentOrder{
		ProviderOrderID: formatID(o.OrderID),
		OrderNumber:     o.OrderNumber,
		OrderKey:        o.OrderKey,
		Status:          o.OrderStatus,
		OrderDate:       orderDate,
		ShipTo:          o.ShipTo.toDomain(),
		AmountPaid:      o.AmountPaid,
	}
}

type listOrdersResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
}

type getRatesRequest struct {
	CarrierCode    string  `json:"carrierCode"`
	FromPostalCode string  `json:"fromPostalCode"`
	ToState        string  `json:"toState,omitempty"`
	ToCountry      string  `json:"toCountry"`
	ToPostalCode   string  `json:"toPostalCode"`
	ToCity         string  `json:"toCity,omitempty"`
	Weight         *weight `json:"weight"`
}

type rateResponse struct {
	ServiceName  string          `json:"serviceName"`
	ServiceCode  string          `json:"serviceCode"`
	ShipmentCost decimal.Decimal `json:"shipmentCost"`
	OtherCost    decimal.Decimal `json:"otherCost"`
}

type createLabelRequest struct {
	OrderID      int64   `json:"orderId"`
	CarrierCode  string  `json:"carrierCode"`
	ServiceCode  string  `json:"serviceCode"`
	Confirmation string  `json:"confirmation"`
	ShipDate     string  `json:"shipDate"`
	Weight       *weight `json:"weight,omitempty"`
	TestLabel    bool    `json:"testLabel"`
}

type labelResponse struct {
	ShipmentID     int64           `json:"shipmentId"`
	TrackingNumber string          `json:"trackingNumber"`
	LabelData      string          `json:"labelData"`
	ShipmentCost   decimal.Decimal `json:"shipmentCost"`
}

type markShippedRequest struct {
	OrderID            int64  `json:"orderId"`
	CarrierCode        string `json:"carrierCode"`
	ShipDate           string `json:"shipDate"`
	TrackingNumber     string `json:"trackingNumber"`
	NotifyCustomer     bool   `json:"notifyCustomer"`
	NotifySalesChannel bool   `json:"notifySalesChannel"`
}

type carrierResponse struct {
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

type warehouseResponse struct {
	WarehouseID   int64   `json:"warehouseId"`
	WarehouseName string  `json:"warehouseName"`
	OriginAddress address `json:"originAddress"`
	IsDefault     bool    `json:"isDefault"`
}

// errorResponse тело ошибки ShipStation.
type errorResponse struct {
	Message          string `json:"Message"`
	ExceptionMessage string `json:"ExceptionMessage"`
}
