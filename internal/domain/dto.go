package domain

type OrderStatusType string

const (
	OrderStatusPending    OrderStatusType = "PENDING"
	OrderStatusPaid       OrderStatusType = "PAID"
	OrderStatusProcessing OrderStatusType = "PROCESSING"
	OrderStatusShipped    OrderStatusType = "SHIPPED"
	OrderStatusDelivered  OrderStatusType = "DELIVERED"
	OrderStatusCancelled  OrderStatusType = "CANCELLED"
	OrderStatusFailed     OrderStatusType = "FAILED"
	OrderStatusRefunded   OrderStatusType = "REFUNDED"
)

// CancellableOrderStatuses статусы, из которых заказ можно отменить.
var CancellableOrderStatuses = []OrderStatusType{OrderStatusPending, OrderStatusProcessing}

type PaymentStatusType string

const (
	PaymentStatusPending PaymentStatusType = "PENDING"
	PaymentStatusPaid    PaymentStatusType = "PAID"
	PaymentStatusFailed  PaymentStatusType = "FAILED"
)

type CommissionStatusType string

const (
	CommissionStatusPending CommissionStatusType = "PENDING"
	CommissionStatusPaid    CommissionStatusType = "PAID"
	CommissionStatusFailed  CommissionStatusType = "FAILED"
)

type UserTier string

const (
	TierMember  UserTier = "MEMBER"
	TierVIP     UserTier = "VIP"
	TierFounder UserTier = "FOUNDER"
)
