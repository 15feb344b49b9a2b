package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"

	"github.com/google/uuid"
)

// CheckoutUsecase turns the user's open cart into a finalized order while
// reserving stock for every line. Reservation and status transition run in
// one transaction; any failure rolls back every decrement already made in
// the attempt, so the cart stays IN_CART and re-checkoutable.
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

type ConfirmationItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type Confirmation struct {
	OrderID          int64              `json:"order_id"`
	ConfirmationCode string             `json:"confirmation_code"`
	Total            int64              `json:"total"`
	FinalizedAt      time.Time          `json:"finalized_at"`
	Items            []ConfirmationItem `json:"items"`
}

// Checkout validates and reserves stock per line in cart insertion order.
// Each reserve is the conditional decrement; a decrement that fails after a
// passing availability check means a concurrent checkout won the race, and
// the re-read classifies the proper stock error. Either every line's stock
// is decremented and the order finalized, or nothing changed.
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64) (Confirmation, error) {
	var conf Confirmation

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindOpenByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNoCartToCheckout
		}
		if err != nil {
			return err
		}

		items, err := r.OrderItems().ListByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrNoCartToCheckout
		}

		var total int64 = 0
		confItems := make([]ConfirmationItem, 0, len(items))

		for _, item := range items {
			product, err := r.Products().FindByID(ctx, item.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return fmt.Errorf("product %d: %w", item.ProductID, repo.ErrNotFound)
			}
			if err != nil {
				return err
			}

			if err := stockError(product, item.Quantity); err != nil {
				return err
			}

			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// lost the race against a concurrent decrement;
				// re-read for an accurate error
				current, err := r.Products().FindByID(ctx, item.ProductID)
				if err != nil {
					return err
				}
				if serr := stockError(current, item.Quantity); serr != nil {
					return serr
				}
				return &InsufficientStockError{
					ProductID:   current.ID,
					ProductName: current.Name,
					Available:   current.Stock,
					Requested:   item.Quantity,
				}
			}

			total += item.UnitPrice * item.Quantity
			confItems = append(confItems, ConfirmationItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		now := time.Now()
		if err := r.Orders().Finalize(ctx, order.ID, now); err != nil {
			return err
		}

		conf = Confirmation{
			OrderID:          order.ID,
			ConfirmationCode: uuid.NewString(),
			Total:            total,
			FinalizedAt:      now,
			Items:            confItems,
		}
		return nil
	})

	if err != nil {
		return Confirmation{}, err
	}
	return conf, nil
}

// stockError classifies availability for one line. Nil when the requested
// quantity fits into the current stock.
func stockError(p model.Product, requested int64) error {
	if p.Stock == 0 {
		return &OutOfStockError{ProductID: p.ID, ProductName: p.Name}
	}
	if p.Stock < requested {
		return &InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Available:   p.Stock,
			Requested:   requested,
		}
	}
	return nil
}
