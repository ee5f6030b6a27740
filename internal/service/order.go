package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/auth"
	"storefront-backend/internal/client"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

const orderCurrency = "USD"

type OrderService interface {
	PlaceOrder(ctx context.Context, userID, paymentToken string) (*model.Order, error)
	GetOrder(ctx context.Context, caller *model.User, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context, userID string) ([]*model.Order, error)
}

type orderServiceImpl struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	gateway   client.PaymentGateway
	log       *logger.Logger
}

func NewOrderService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	gateway client.PaymentGateway,
	log *logger.Logger,
) OrderService {
	return &orderServiceImpl{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		gateway:   gateway,
		log:       log,
	}
}

// PlaceOrder runs the charge-then-materialize pipeline. Nothing is written
// before the gateway confirms the charge; everything after a confirmed
// charge either completes or surfaces a ReconciliationError.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID, paymentToken string) (*model.Order, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}

	// freshly loaded cart; the client never supplies an amount
	cartItems, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	snapshot := make([]*model.CartItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		if cartItem.Item != nil {
			snapshot = append(snapshot, cartItem)
		}
	}
	if len(snapshot) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	total := CartTotal(snapshot)

	charge, err := s.gateway.Charge(ctx, total, orderCurrency, paymentToken)
	if err != nil {
		// no writes have happened; the cart is untouched and retry is safe
		return nil, fmt.Errorf("%w: %s", apperr.ErrPaymentFailed, err)
	}

	order := &model.Order{
		ID:     uuid.NewString(),
		UserID: userID,
		// the gateway's confirmed amount, not the locally computed total
		Total:  charge.Amount,
		Charge: charge.TransactionID,
		Items:  make([]model.OrderItem, len(snapshot)),
	}
	snapshotIDs := make([]string, len(snapshot))
	for i, cartItem := range snapshot {
		snapshotIDs[i] = cartItem.ID
		order.Items[i] = model.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			Title:       cartItem.Item.Title,
			Description: cartItem.Item.Description,
			Image:       cartItem.Item.Image,
			LargeImage:  cartItem.Item.LargeImage,
			Price:       cartItem.Item.Price,
			Quantity:    cartItem.Quantity,
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		recErr := &apperr.ReconciliationError{
			UserID:   userID,
			ChargeID: charge.TransactionID,
			Amount:   charge.Amount,
			Err:      fmt.Errorf("create order: %w", err),
		}
		s.log.Error("order materialization failed after confirmed charge",
			"user_id", userID, "charge_id", charge.TransactionID, "amount", charge.Amount, "error", err)
		return nil, recErr
	}

	// delete exactly the charged snapshot; items added mid-flight survive
	if err := s.cartRepo.DeleteByIDs(ctx, snapshotIDs); err != nil {
		recErr := &apperr.ReconciliationError{
			UserID:   userID,
			ChargeID: charge.TransactionID,
			Amount:   charge.Amount,
			Err:      fmt.Errorf("clear charged cart items: %w", err),
		}
		s.log.Error("cart teardown failed after confirmed charge",
			"user_id", userID, "charge_id", charge.TransactionID, "order_id", order.ID, "error", err)
		return nil, recErr
	}

	return order, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, caller *model.User, orderID string) (*model.Order, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != caller.ID {
		if err := auth.Require(caller, model.PermissionAdmin); err != nil {
			return nil, fmt.Errorf("%w: this order isn't yours", apperr.ErrForbidden)
		}
	}

	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	return s.orderRepo.ListByUser(ctx, userID)
}
