package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/service"
	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminHandler операции оператора: возвраты и управление доставкой.
type AdminHandler struct {
	refundSvs      RefundServicer
	fulfillmentSvs FulfillmentServicer
}

func NewAdminHandler(refundSvs RefundServicer, fulfillmentSvs FulfillmentServicer) *AdminHandler {
	return &AdminHandler{
		refundSvs:      refundSvs,
		fulfillmentSvs: fulfillmentSvs,
	}
}

type RefundParams struct {
	// Amount пустая или нулевая сумма означает полный возврат.
	Amount decimal.Decimal `json:"amount" binding:"dgte0"`
}

type RefundResponse struct {
	Order    OrderResponse `json:"order"`
	RefundID string        `json:"refundId"`
	Amount   float64       `json:"amount"`
	Status   string        `json:"status"`
}

type LabelParams struct {
	CarrierCode string  `json:"carrierCode"`
	ServiceCode string  `json:"serviceCode" binding:"required,max_bytes=64"`
	WeightOz    float64 `json:"weightOz"    binding:"gte=0"`
	TestLabel   bool    `json:"testLabel"`
}

type ShipParams struct {
	CarrierCode    string `json:"carrierCode"`
	TrackingNumber string `json:"trackingNumber" binding:"required,max_bytes=128"`
	NotifyCustomer bool   `json:"notifyCustomer"`
}

type ProviderOrdersQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"     binding:"omitempty,gt=0"`
	PageSize int    `form:"pageSize" binding:"omitempty,gt=0,lte=500"`
}

// Refund POST AdminGroup + AdminRefundRoute.
func (h *AdminHandler) Refund(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var params RefundParams
	if c.Request.ContentLength != 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			abortWithBindError(c, bindErr)
			return
		}
	}

	reqCtx, cancel := context.WithTimeout(c, ProviderTimeout)
	defer cancel()

	result, err := h.refundSvs.Refund(reqCtx, orderID, params.Amount)
	if err != nil {
		abortWithError(c, err)
		return
	}

	middlewares.Success(c, http.StatusOK, "order refunded", RefundResponse{
		Order:    newOrderResponse(result.Order),
		RefundID: result.Refund.ID,
		Amount:   result.Refund.Amount.InexactFloat64(),
		Status:   result.Refund.Status,
	})
}

// Fulfillment POST AdminGroup + AdminFulfillmentRoute. Повторная передача заказа в службу доставки.
func (h *AdminHandler) Fulfillment(c *gin.Context) {
	h.orderAction(c, "order pushed to fulfillment", func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
		return h.fulfillmentSvs.Push(ctx, id)
	})
}

// Label POST AdminGroup + AdminLabelRoute.
func (h *AdminHandler) Label(c *gin.Context) {
	var params LabelParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	h.orderAction(c, "label created", func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
		return h.fulfillmentSvs.CreateLabel(ctx, id, service.LabelArgs{
			CarrierCode: params.CarrierCode,
			ServiceCode: params.ServiceCode,
			WeightOz:    params.WeightOz,
			TestLabel:   params.TestLabel,
		})
	})
}

// Ship POST AdminGroup + AdminShipRoute.
func (h *AdminHandler) Ship(c *gin.Context) {
	var params ShipParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	h.orderAction(c, "order shipped", func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
		return h.fulfillmentSvs.MarkShipped(ctx, id, service.ShipArgs{
			CarrierCode:    params.CarrierCode,
			TrackingNumber: params.TrackingNumber,
			NotifyCustomer: params.NotifyCustomer,
		})
	})
}

// Deliver POST AdminGroup + AdminDeliverRoute.
func (h *AdminHandler) Deliver(c *gin.Context) {
	h.orderAction(c, "order delivered", h.fulfillmentSvs.MarkDelivered)
}

// Carriers GET AdminGroup + AdminCarriersRoute.
func (h *AdminHandler) Carriers(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, ProviderTimeout)
	defer cancel()

	carriers, err := h.fulfillmentSvs.Carriers(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	middlewares.Success(c, http.StatusOK, "", carriers)
}

// Warehouses GET AdminGroup + AdminWarehousesRoute.
func (h *AdminHandler) Warehouses(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, ProviderTimeout)
	defer cancel()

	warehouses, err := h.fulfillmentSvs.Warehouses(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	middlewares.Success(c, http.StatusOK, "", warehouses)
}

// ProviderOrders GET AdminGroup + AdminProviderOrdersRoute.
func (h *AdminHandler) ProviderOrders(c *gin.Context) {
	var query ProviderOrdersQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, ProviderTimeout)
	defer cancel()

	list, err := h.fulfillmentSvs.ProviderOrders(reqCtx, domain.ShipmentOrderQuery{
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	middlewares.SuccessWithMeta(c, http.StatusOK, "", list.Orders, gin.H{
		"total": list.Total,
		"page":  list.Page,
		"pages": list.Pages,
	})
}

// orderAction общий шаг для операций над заказом по :id.
func (h *AdminHandler) orderAction(
	c *gin.Context,
	message string,
	action func(ctx context.Context, id uuid.UUID) (*domain.Order, error),
) {
	orderID, err := orderIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, ProviderTimeout)
	defer cancel()

	order, err := action(reqCtx, orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	middlewares.Success(c, http.StatusOK, message, newOrderResponse(order))
}
