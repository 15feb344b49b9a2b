package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"
)

// In-memory TxRepos + TransactionManager. WithinTx snapshots the maps and
// restores them when fn fails, which mirrors the rollback semantics the
// usecases rely on.
type memStore struct {
	mu sync.Mutex

	users       map[int64]model.User
	products    map[int64]model.Product
	orders      map[int64]model.Order
	items       map[int64]model.OrderItem
	adjustments []model.InventoryAdjustment

	nextOrderID int64
	nextItemID  int64
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[int64]model.User{},
		products:    map[int64]model.Product{},
		orders:      map[int64]model.Order{},
		items:       map[int64]model.OrderItem{},
		nextOrderID: 1,
		nextItemID:  1,
	}
}

func (s *memStore) addUser(u model.User) {
	s.users[u.ID] = u
}

func (s *memStore) addProduct(p model.Product) {
	s.products[p.ID] = p
}

type memSnapshot struct {
	users       map[int64]model.User
	products    map[int64]model.Product
	orders      map[int64]model.Order
	items       map[int64]model.OrderItem
	adjustments []model.InventoryAdjustment
	nextOrderID int64
	nextItemID  int64
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		users:       make(map[int64]model.User, len(s.users)),
		products:    make(map[int64]model.Product, len(s.products)),
		orders:      make(map[int64]model.Order, len(s.orders)),
		items:       make(map[int64]model.OrderItem, len(s.items)),
		adjustments: append([]model.InventoryAdjustment{}, s.adjustments...),
		nextOrderID: s.nextOrderID,
		nextItemID:  s.nextItemID,
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.orders {
		snap.orders[k] = v
	}
	for k, v := range s.items {
		snap.items[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.products = snap.products
	s.orders = snap.orders
	s.items = snap.items
	s.adjustments = snap.adjustments
	s.nextOrderID = snap.nextOrderID
	s.nextItemID = snap.nextItemID
}

func (s *memStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) Users() repo.UserRepository           { return memUsers{s} }
func (s *memStore) Products() repo.ProductRepository     { return memProducts{s} }
func (s *memStore) Orders() repo.OrderRepository         { return memOrders{s} }
func (s *memStore) OrderItems() repo.OrderItemRepository { return memItems{s} }
func (s *memStore) Inventory() repo.InventoryRepository  { return memInventory{s} }

type memUsers struct{ s *memStore }

func (m memUsers) Create(ctx context.Context, u model.User) (model.User, error) {
	m.s.users[u.ID] = u
	return u, nil
}

func (m memUsers) FindByID(ctx context.Context, id int64) (model.User, error) {
	u, ok := m.s.users[id]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (m memUsers) FindByEmail(ctx context.Context, email string) (model.User, error) {
	for _, u := range m.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (m memUsers) FindByAuth0Sub(ctx context.Context, sub string) (model.User, error) {
	for _, u := range m.s.users {
		if u.Auth0Sub == sub {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (m memUsers) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.s.users))
	for _, u := range m.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memUsers) Update(ctx context.Context, u model.User) error {
	if _, ok := m.s.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	m.s.users[u.ID] = u
	return nil
}

func (m memUsers) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.s.users, id)
	return nil
}

func (m memUsers) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := m.s.users[id]
	return ok, nil
}

type memProducts struct{ s *memStore }

func (m memProducts) List(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(m.s.products))
	for _, p := range m.s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := m.s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (m memProducts) FindByName(ctx context.Context, name string) (model.Product, error) {
	for _, p := range m.s.products {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (m memProducts) Create(ctx context.Context, p model.Product) (model.Product, error) {
	m.s.products[p.ID] = p
	return p, nil
}

func (m memProducts) Update(ctx context.Context, p model.Product) error {
	if _, ok := m.s.products[p.ID]; !ok {
		return repo.ErrNotFound
	}
	m.s.products[p.ID] = p
	return nil
}

func (m memProducts) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.products[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.s.products, id)
	return nil
}

func (m memProducts) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := m.s.products[id]
	return ok, nil
}

type memOrders struct{ s *memStore }

func (m memOrders) GetOrCreateOpen(ctx context.Context, userID int64) (model.Order, error) {
	for _, o := range m.s.orders {
		if o.UserID == userID && o.Status == model.OrderStatusInCart {
			return o, nil
		}
	}

	o := model.Order{
		ID:     m.s.nextOrderID,
		UserID: userID,
		Status: model.OrderStatusInCart,
		Date:   time.Now(),
	}
	m.s.nextOrderID++
	m.s.orders[o.ID] = o
	return o, nil
}

func (m memOrders) FindOpenByUserID(ctx context.Context, userID int64) (model.Order, error) {
	for _, o := range m.s.orders {
		if o.UserID == userID && o.Status == model.OrderStatusInCart {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (m memOrders) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	o, ok := m.s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (m memOrders) ListFinalizedByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range m.s.orders {
		if o.UserID == userID && o.Status == model.OrderStatusFinalized {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memOrders) Finalize(ctx context.Context, orderID int64, date time.Time) error {
	o, ok := m.s.orders[orderID]
	if !ok || o.Status != model.OrderStatusInCart {
		return repo.ErrNotFound
	}
	o.Status = model.OrderStatusFinalized
	o.Date = date
	m.s.orders[orderID] = o
	return nil
}

type memItems struct{ s *memStore }

func (m memItems) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var out []model.OrderItem
	for _, it := range m.s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memItems) UpsertByOrderAndProduct(ctx context.Context, orderID int64, productID int64, addQty int64, unitPrice int64) error {
	for id, it := range m.s.items {
		if it.OrderID == orderID && it.ProductID == productID {
			it.Quantity += addQty
			m.s.items[id] = it
			return nil
		}
	}

	it := model.OrderItem{
		ID:        m.s.nextItemID,
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  addQty,
		UnitPrice: unitPrice,
	}
	m.s.nextItemID++
	m.s.items[it.ID] = it
	return nil
}

func (m memItems) SetQuantity(ctx context.Context, orderID int64, productID int64, qty int64) error {
	for id, it := range m.s.items {
		if it.OrderID == orderID && it.ProductID == productID {
			it.Quantity = qty
			m.s.items[id] = it
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m memItems) DeleteByOrderAndProduct(ctx context.Context, orderID int64, productID int64) error {
	for id, it := range m.s.items {
		if it.OrderID == orderID && it.ProductID == productID {
			delete(m.s.items, id)
			return nil
		}
	}
	return repo.ErrNotFound
}

type memInventory struct{ s *memStore }

func (m memInventory) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	p, ok := m.s.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	m.s.products[productID] = p
	return true, nil
}

func (m memInventory) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	p, ok := m.s.products[productID]
	if !ok {
		return repo.ErrNotFound
	}
	p.Stock += qty
	m.s.products[productID] = p
	return nil
}

func (m memInventory) SetStock(ctx context.Context, productID int64, newStock int64) error {
	p, ok := m.s.products[productID]
	if !ok {
		return repo.ErrNotFound
	}
	p.Stock = newStock
	m.s.products[productID] = p
	return nil
}

func (m memInventory) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error {
	m.s.adjustments = append(m.s.adjustments, adj)
	return nil
}
