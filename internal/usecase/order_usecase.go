package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"
)

// Read side of the order history. Finalized orders only; the open cart is
// served by CartUsecase.
type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

type OrderOutput struct {
	ID     int64             `json:"id"`
	UserID int64             `json:"user_id"`
	Status string            `json:"status"`
	Date   time.Time         `json:"date"`
	Total  int64             `json:"total"`
	Items  []OrderItemOutput `json:"items"`
}

// ListFinalizedOrders returns every finalized order of the user, oldest
// first, with its line items.
func (u *OrderUsecase) ListFinalizedOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		exists, err := r.Users().ExistsByID(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("user %d: %w", userID, repo.ErrNotFound)
		}

		orders, err := r.Orders().ListFinalizedByUserID(ctx, userID)
		if err != nil {
			return err
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return err
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// GetOrderDetail returns one order of the user. Someone else's order is
// reported as not found rather than forbidden.
func (u *OrderUsecase) GetOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("order %d: %w", orderID, repo.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return fmt.Errorf("order %d: %w", orderID, repo.ErrNotFound)
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return err
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
		total += it.UnitPrice * it.Quantity
	}

	return OrderOutput{
		ID:     o.ID,
		UserID: o.UserID,
		Status: string(o.Status),
		Date:   o.Date,
		Total:  total,
		Items:  outItems,
	}
}
