package shipstation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/shopspring/decimal"
)

const ProviderName = "shipstation"

const (
	RouteCreateOrder  = "/orders/createorder"
	RouteListOrders   = "/orders"
	RouteGetRates     = "/shipments/getrates"
	RouteCreateLabel  = "/orders/createlabelfororder"
	RouteMarkShipped  = "/orders/markasshipped"
	RouteCarriers     = "/carriers"
	RouteWarehouses   = "/warehouses"
	defaultAPITimeout = 15 * time.Second
	labelConfirmation = "none"
)

// Константы минимального и максимального значения в заголовке X-Rate-Limit-Reset.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

// Client HTTP клиент ShipStation API v1. Авторизация Basic по ключу и секрету.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func New(baseURL, apiKey, apiSecret string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: defaultAPITimeout},
	}
}

// SetTimeout устанавливает таймаут одного запроса.
func (c *Client) SetTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

func (c *Client) CreateOrder(ctx context.Context, req domain.ShipmentOrderRequest) (*domain.ShipmentOrder, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, RouteCreateOrder, nil, newCreateOrderRequest(req), &resp); err != nil {
		return nil, fmt.Errorf("create order `%s`: %w", req.OrderNumber, err)
	}
	order := resp.toDomain()
	return &order, nil
}

func (c *Client) GetRates(ctx context.Context, query domain.RateQuery) ([]domain.ShippingRate, error) {
	body := getRatesRequest{
		CarrierCode:    query.CarrierCode,
		FromPostalCode: query.FromPostalCode,
		ToState:        query.ToState,
		ToCountry:      query.ToCountry,
		ToPostalCode:   query.ToPostalCode,
		ToCity:         query.ToCity,
		Weight:         &weight{Value: query.WeightOz, Units: weightUnitsOunces},
	}

	var resp []rateResponse
	if err := c.do(ctx, http.MethodPost, RouteGetRates, nil, body, &resp); err != nil {
		return nil, fmt.Errorf("get rates to `%s`: %w", query.ToPostalCode, err)
	}

	rates := make([]domain.ShippingRate, len(resp))
	for i, r := range resp {
		rates[i] = domain.ShippingRate{
			ServiceName:  r.ServiceName,
			ServiceCode:  r.ServiceCode,
			ShipmentCost: r.ShipmentCost,
			OtherCost:    r.OtherCost,
		}
	}
	return rates, nil
}

func (c *Client) CreateLabel(ctx context.Context, req domain.LabelRequest) (*domain.ShipmentLabel, error) {
	orderID, err := parseID(req.ProviderOrderID)
	if err != nil {
		return nil, err
	}
	body := createLabelRequest{
		OrderID:      orderID,
		CarrierCode:  req.CarrierCode,
		ServiceCode:  req.ServiceCode,
		Confirmation: labelConfirmation,
		ShipDate:     shipDate(req.ShipDate),
		Weight:       ounces(req.WeightOz),
		TestLabel:    req.TestLabel,
	}

	var resp labelResponse
	if doErr := c.do(ctx, http.MethodPost, RouteCreateLabel, nil, body, &resp); doErr != nil {
		return nil, fmt.Errorf("create label for order %d: %w", orderID, doErr)
	}
	return &domain.ShipmentLabel{
		ShipmentID:     formatID(resp.ShipmentID),
		TrackingNumber: resp.TrackingNumber,
		LabelData:      resp.LabelData,
		ShipmentCost:   resp.ShipmentCost,
	}, nil
}

func (c *Client) MarkShipped(ctx context.Context, req domain.MarkShippedRequest) error {
	orderID, err := parseID(req.ProviderOrderID)
	if err != nil {
		return err
	}
	body := markShippedRequest{
		OrderID:            orderID,
		CarrierCode:        req.CarrierCode,
		ShipDate:           shipDate(req.ShipDate),
		TrackingNumber:     req.TrackingNumber,
		NotifyCustomer:     req.NotifyCustomer,
		NotifySalesChannel: true,
	}
	if doErr := c.do(ctx, http.MethodPost, RouteMarkShipped, nil, body, nil); doErr != nil {
		return fmt.Errorf("mark order %d shipped: %w", orderID, doErr)
	}
	return nil
}

func (c *Client) ListOrders(ctx context.Context, query domain.ShipmentOrderQuery) (*domain.ShipmentOrderList, error) {
	params := url.Values{}
	if query.Status != "" {
		params.Set("orderStatus", query.Status)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(query.PageSize))
	}

	var resp listOrdersResponse
	if err := c.do(ctx, http.MethodGet, RouteListOrders, params, nil, &resp); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	list := domain.ShipmentOrderList{
		Orders: make([]domain.ShipmentOrder, len(resp.Orders)),
		Total:  resp.Total,
		Page:   resp.Page,
		Pages:  resp.Pages,
	}
	for i, o := range resp.Orders {
		list.Orders[i] = o.toDomain()
	}
	return &list, nil
}

func (c *Client) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	var resp []carrierResponse
	if err := c.do(ctx, http.MethodGet, RouteCarriers, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list carriers: %w", err)
	}
	carriers := make([]domain.Carrier, len(resp))
	for i, cr := range resp {
		carriers[i] = domain.Carrier{
			Name:          cr.Name,
			Code:          cr.Code,
			AccountNumber: cr.AccountNumber,
			Balance:       cr.Balance,
		}
	}
	return carriers, nil
}

func (c *Client) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	var resp []warehouseResponse
	if err := c.do(ctx, http.MethodGet, RouteWarehouses, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	warehouses := make([]domain.Warehouse, len(resp))
	for i, w := range resp {
		warehouses[i] = domain.Warehouse{
			ID:            formatID(w.WarehouseID),
			Name:          w.WarehouseName,
			IsDefault:     w.IsDefault,
			OriginAddress: w.OriginAddress.toDomain(),
		}
	}
	return warehouses, nil
}

// do выполняет запрос к API. Любой ответ со статусом вне 2xx возвращается как *domain.ProviderError,
// внутри которой лежит StatusCodeError или TooManyRequestError для http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c *Client) do(
	ctx context.Context,
	method, route string,
	query url.Values,
	payload any,
	out any,
) (err error) {
	// Формируем URL запроса.
	reqURL := c.baseURL + route
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return fmt.Errorf("marshal request: %s", marshalErr.Error())
		}
		body = bytes.NewReader(raw)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, reqURL, body)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return domain.NewProviderError(ProviderName, 0, "do request: "+doErr.Error(), doErr)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return domain.NewProviderError(ProviderName, resp.StatusCode, "read response: "+readErr.Error(), readErr)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		ra := retryAfter(resp.Header.Get("X-Rate-Limit-Reset"))
		return domain.NewProviderError(ProviderName, resp.StatusCode, errorMessage(respBody, resp.Status),
			NewTooManyRequestError(ra))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := errorMessage(respBody, resp.Status)
		return domain.NewProviderError(ProviderName, resp.StatusCode, msg, NewStatusCodeError(resp.StatusCode, msg))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if jsonErr := json.Unmarshal(respBody, out); jsonErr != nil {
		return domain.NewProviderError(ProviderName, resp.StatusCode, "parse response: "+jsonErr.Error(), jsonErr)
	}
	return nil
}

func retryAfter(header string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	value, parseErr := decimal.NewFromString(header)
	if parseErr != nil || value.LessThan(minValue) || value.GreaterThan(maxValue) {
		value = decimal.NewFromInt(defaultRetryAfter)
	}
	return time.Duration(value.IntPart()) * time.Second
}

func errorMessage(body []byte, fallback string) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.ExceptionMessage != "" {
			return errResp.ExceptionMessage
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}
	if len(body) > 0 && len(body) <= 256 && !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return string(bytes.TrimSpace(body))
	}
	return fallback
}

func shipDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format(shipDateLayout)
}

func parseID(id string) (int64, error) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("shipstation order id `%s`: %w", id, domain.ErrValidation)
	}
	return v, nil
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
