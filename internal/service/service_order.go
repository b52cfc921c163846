package service

import (
	"context"
	"errors"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// OrderService implements Orders. It needs the product repository to
// capture catalogue prices and check warehouse membership when an order is
// placed.
type OrderService struct {
	orders   store.OrderRepository
	products store.ProductRepository
	log      *logger.Logger
}

func NewOrderService(orders store.OrderRepository, products store.ProductRepository, log *logger.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, log: log}
}

// Create places an order for the requesting client.
//
// Each item must reference a product of the order's warehouse. The current
// catalogue price is copied onto every item so later price changes never
// rewrite order history. New orders always start in PENDING.
func (s *OrderService) Create(ctx context.Context, requester models.AuthUser, order models.Order) (models.Order, error) {
	if order.WarehouseID == 0 || len(order.Items) == 0 {
		return models.Order{}, ErrInvalidDataProvided
	}

	for i := range order.Items {
		item := &order.Items[i]
		if item.ProductID == 0 || item.Quantity <= 0 {
			return models.Order{}, ErrInvalidDataProvided
		}

		product, err := s.products.FindProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return models.Order{}, ErrInvalidDataProvided
			}
			return models.Order{}, err
		}
		if product.WarehouseID != order.WarehouseID {
			return models.Order{}, ErrInvalidDataProvided
		}
		item.UnitPrice = product.UnitPrice
	}

	order.ClientID = requester.UserID
	order.Status = models.OrderPending

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	s.log.Info().
		Int64("order_id", created.OrderID).
		Int64("client_id", created.ClientID).
		Int64("warehouse_id", created.WarehouseID).
		Int("items", len(created.Items)).
		Msg("order placed")

	return created, nil
}

// Get returns one order. Clients may only read their own orders; staff and
// the other privileged roles see everything.
func (s *OrderService) Get(ctx context.Context, requester models.AuthUser, orderID int64) (models.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if requester.Role == models.RoleClient && order.ClientID != requester.UserID {
		return models.Order{}, ErrNotOrderOwner
	}
	return order, nil
}

// List returns orders matching the filter. For client callers the client
// filter is forced to their own id regardless of what they asked for.
func (s *OrderService) List(ctx context.Context, requester models.AuthUser, filter models.OrderFilter) ([]models.Order, error) {
	if requester.Role == models.RoleClient {
		filter.ClientID = requester.UserID
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidDataProvided
	}
	return s.orders.ListOrders(ctx, filter)
}

// UpdateStatus advances the order along its lifecycle. The repository
// update is a compare-and-set on the current status, so two concurrent
// transitions cannot both succeed.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrInvalidDataProvided
	}

	current, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return models.Order{}, ErrInvalidStatusTransition
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, orderID, current.Status, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The order existed a moment ago, so the compare-and-set
			// lost a race against another transition.
			return models.Order{}, ErrInvalidStatusTransition
		}
		return models.Order{}, err
	}

	s.log.Info().
		Int64("order_id", orderID).
		Str("from", string(current.Status)).
		Str("to", string(status)).
		Msg("order status changed")

	return updated, nil
}
