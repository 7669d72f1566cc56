// Package http provides the inbound REST adapter. It translates between the
// wire contract of the order API and the application's commands and queries;
// no business rule lives here.
package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
	Notas      string             `json:"notas"`
}

// OrderItemRequest describes one order line in create and update payloads.
type OrderItemRequest struct {
	CodigoProducto string          `json:"codigoProducto"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// UpdateOrderRequest is the payload for PUT /api/v1/orders/:orderId.
// Both fields are optional; an absent field leaves that part untouched.
type UpdateOrderRequest struct {
	Items []OrderItemRequest `json:"items,omitempty"`
	Notas *string            `json:"notas,omitempty"`
}

// UpdateOrderStatusRequest is the payload for PATCH /api/v1/orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummaryResponse is the list-view representation of an order.
type OrderSummaryResponse struct {
	OrderID            string          `json:"orderId"`
	CustomerID         string          `json:"customerId"`
	OrderNumber        string          `json:"orderNumber"`
	Status             string          `json:"status"`
	StatusDisplayName  string          `json:"statusDisplayName"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	ItemCount          int             `json:"itemCount"`
	FechaPedido        time.Time       `json:"fechaPedido"`
	FechaActualizacion time.Time       `json:"fechaActualizacion"`
}

// OrderDetailResponse is the single-order representation including lines.
type OrderDetailResponse struct {
	OrderID            string              `json:"orderId"`
	CustomerID         string              `json:"customerId"`
	OrderNumber        string              `json:"orderNumber"`
	Status             string              `json:"status"`
	StatusDisplayName  string              `json:"statusDisplayName"`
	Items              []OrderItemResponse `json:"items"`
	TotalAmount        decimal.Decimal     `json:"totalAmount"`
	Notas              string              `json:"notas,omitempty"`
	FechaPedido        time.Time           `json:"fechaPedido"`
	FechaActualizacion time.Time           `json:"fechaActualizacion"`
}

// OrderItemResponse is the wire representation of one order line.
type OrderItemResponse struct {
	ID             string          `json:"id"`
	CodigoProducto string          `json:"codigoProducto"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// PagedOrdersResponse wraps a page of order summaries.
type PagedOrdersResponse struct {
	Content       []OrderSummaryResponse `json:"content"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int64                  `json:"totalElements"`
}

// statusDisplayNames carries the human-readable status labels the API has
// always served alongside the enum value.
var statusDisplayNames = map[string]string{
	"PENDING":    "Pendiente",
	"CONFIRMED":  "Confirmado",
	"PROCESSING": "En Proceso",
	"SHIPPED":    "Enviado",
	"DELIVERED":  "Entregado",
	"CANCELLED":  "Cancelado",
}

func displayName(status string) string {
	return statusDisplayNames[status]
}

// fromDomainOrder maps a freshly mutated aggregate to the detail view.
func fromDomainOrder(o *order.Order) OrderDetailResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:             item.ID().String(),
			CodigoProducto: item.ProductCode(),
			NombreProducto: item.ProductName(),
			Cantidad:       item.Quantity(),
			PrecioUnitario: item.UnitPrice().Amount(),
			Subtotal:       item.Subtotal().Amount(),
		})
	}

	status := o.Status().String()
	return OrderDetailResponse{
		OrderID:            o.ID().String(),
		CustomerID:         o.CustomerID(),
		OrderNumber:        o.Number().String(),
		Status:             status,
		StatusDisplayName:  displayName(status),
		Items:              items,
		TotalAmount:        o.TotalAmount().Amount(),
		Notas:              o.Notes(),
		FechaPedido:        o.PlacedAt(),
		FechaActualizacion: o.UpdatedAt(),
	}
}

// fromReadModelDetail maps a query read model to the detail view.
func fromReadModelDetail(view queries.OrderResponse) OrderDetailResponse {
	items := make([]OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItemResponse{
			CodigoProducto: item.ProductCode,
			NombreProducto: item.ProductName,
			Cantidad:       item.Quantity,
			PrecioUnitario: item.UnitPrice,
			Subtotal:       item.Subtotal,
		})
	}

	return OrderDetailResponse{
		OrderID:            view.OrderID.String(),
		CustomerID:         view.CustomerID,
		OrderNumber:        view.OrderNumber,
		Status:             view.Status,
		StatusDisplayName:  displayName(view.Status),
		Items:              items,
		TotalAmount:        view.TotalAmount,
		Notas:              view.Notes,
		FechaPedido:        view.PlacedAt,
		FechaActualizacion: view.UpdatedAt,
	}
}

// fromReadModelSummary maps a query read model to the list view.
func fromReadModelSummary(view queries.OrderResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		OrderID:            view.OrderID.String(),
		CustomerID:         view.CustomerID,
		OrderNumber:        view.OrderNumber,
		Status:             view.Status,
		StatusDisplayName:  displayName(view.Status),
		TotalAmount:        view.TotalAmount,
		ItemCount:          len(view.Items),
		FechaPedido:        view.PlacedAt,
		FechaActualizacion: view.UpdatedAt,
	}
}

func fromReadModelSummaries(views []queries.OrderResponse) []OrderSummaryResponse {
	summaries := make([]OrderSummaryResponse, 0, len(views))
	for _, view := range views {
		summaries = append(summaries, fromReadModelSummary(view))
	}
	return summaries
}
