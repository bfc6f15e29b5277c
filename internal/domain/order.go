package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus reflects whether the checkout's payment was confirmed.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known fulfillment states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is the immutable record of a completed checkout. Line items are
// frozen copies of the product at purchase time, so later catalog edits
// never alter order history.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"user" bson:"user_id"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     float64            `json:"totalAmount" bson:"total_amount"`
	ShippingAddress string             `json:"shippingAddress" bson:"shipping_address"`
	PaymentMethod   string             `json:"paymentMethod" bson:"payment_method"`
	PaymentStatus   PaymentStatus      `json:"paymentStatus" bson:"payment_status"`
	Status          OrderStatus        `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updated_at"`
}

// OrderItem captures a product reference, name, price, quantity and a
// single image at order-creation time.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"product" bson:"product_id"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
}
