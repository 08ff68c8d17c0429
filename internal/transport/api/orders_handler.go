package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	orderSvs       OrderServicer
	fulfillmentSvs FulfillmentServicer
}

func NewOrdersHandler(orderSvs OrderServicer, fulfillmentSvs FulfillmentServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs:       orderSvs,
		fulfillmentSvs: fulfillmentSvs,
	}
}

type listMeta struct {
	Count int `json:"count"`
}

// Index GET RouteGroup + OrdersRoute.
func (o *OrdersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.ListByUser(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}

	middlewares.SuccessWithMeta(c, http.StatusOK, "", response, listMeta{Count: len(response)})
}

// Show GET RouteGroup + OrderRoute. Заказ доступен владельцу и администратору.
func (o *OrdersHandler) Show(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, orderID, getActorFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	middlewares.Success(c, http.StatusOK, "", newOrderResponse(order))
}

// Cancel POST RouteGroup + OrderCancelRoute.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.fulfillmentSvs.Cancel(reqCtx, orderID, getActorFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	middlewares.Success(c, http.StatusOK, "order cancelled", newOrderResponse(order))
}
