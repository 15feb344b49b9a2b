package usecase

import (
	"context"
	"errors"
	"fmt"

	repo "github.com/MoBa75/webshop/internal/repository"
)

// CartUsecase keeps the per-user open order (the cart) and its line items.
// Every mutation runs as one transaction: read, mutate, commit.
type CartUsecase struct {
	tx repo.TransactionManager
}

func NewCartUsecase(tx repo.TransactionManager) *CartUsecase {
	return &CartUsecase{tx: tx}
}

type CartItemView struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type CartView struct {
	OrderID int64          `json:"order_id,omitempty"`
	Empty   bool           `json:"empty"`
	Items   []CartItemView `json:"items"`
	Total   int64          `json:"total"`
}

// AddItem puts qty of a product into the user's cart, creating the cart on
// first use. A line for the same product merges: quantities add up, the
// price snapshot of the first add stays.
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, productID int64, qty int64) (CartView, error) {
	if qty <= 0 {
		return CartView{}, ErrInvalidQuantity
	}

	var view CartView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		exists, err := r.Users().ExistsByID(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("user %d: %w", userID, repo.ErrNotFound)
		}

		product, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("product %d: %w", productID, repo.ErrNotFound)
		}
		if err != nil {
			return err
		}

		order, err := r.Orders().GetOrCreateOpen(ctx, userID)
		if err != nil {
			return err
		}

		// price is copied here; later product price changes must not
		// alter this cart line
		if err := r.OrderItems().UpsertByOrderAndProduct(ctx, order.ID, productID, qty, product.Price); err != nil {
			return err
		}

		view, err = buildCartView(ctx, r, order.ID)
		return err
	})

	if err != nil {
		return CartView{}, err
	}
	return view, nil
}

// UpdateItem overwrites the line's quantity (absolute set, not additive).
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, productID int64, qty int64) (CartView, error) {
	if qty <= 0 {
		return CartView{}, ErrInvalidQuantity
	}

	var view CartView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindOpenByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrItemNotInCart
		}
		if err != nil {
			return err
		}

		err = r.OrderItems().SetQuantity(ctx, order.ID, productID, qty)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrItemNotInCart
		}
		if err != nil {
			return err
		}

		view, err = buildCartView(ctx, r, order.ID)
		return err
	})

	if err != nil {
		return CartView{}, err
	}
	return view, nil
}

// RemoveItem deletes the product's line from the cart.
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, productID int64) (CartView, error) {
	var view CartView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindOpenByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrItemNotInCart
		}
		if err != nil {
			return err
		}

		err = r.OrderItems().DeleteByOrderAndProduct(ctx, order.ID, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrItemNotInCart
		}
		if err != nil {
			return err
		}

		view, err = buildCartView(ctx, r, order.ID)
		return err
	})

	if err != nil {
		return CartView{}, err
	}
	return view, nil
}

// ViewCart is side-effect-free; a user without an open order gets the
// empty-cart marker instead of a lazily created one.
func (u *CartUsecase) ViewCart(ctx context.Context, userID int64) (CartView, error) {
	var view CartView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindOpenByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			view = CartView{Empty: true, Items: []CartItemView{}}
			return nil
		}
		if err != nil {
			return err
		}

		view, err = buildCartView(ctx, r, order.ID)
		return err
	})

	if err != nil {
		return CartView{}, err
	}
	return view, nil
}

func buildCartView(ctx context.Context, r repo.TxRepos, orderID int64) (CartView, error) {
	items, err := r.OrderItems().ListByOrderID(ctx, orderID)
	if err != nil {
		return CartView{}, err
	}

	viewItems := make([]CartItemView, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		name := ""
		if p, err := r.Products().FindByID(ctx, it.ProductID); err == nil {
			name = p.Name
		}

		viewItems = append(viewItems, CartItemView{
			ProductID: it.ProductID,
			Name:      name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})

		total += it.UnitPrice * it.Quantity
	}

	return CartView{
		OrderID: orderID,
		Empty:   len(viewItems) == 0,
		Items:   viewItems,
		Total:   total,
	}, nil
}
