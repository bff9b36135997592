package service

import (
	"context"
	"fmt"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

// The fakes below are plain in-memory maps; ids are assigned sequentially so
// tests can predict them.

type fakeInventoryRepo struct {
	items map[string]domain.InventoryItem
	seq   int
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: map[string]domain.InventoryItem{}}
}

func (r *fakeInventoryRepo) Create(_ context.Context, item *domain.InventoryItem) error {
	if item.ID == "" {
		r.seq++
		item.ID = fmt.Sprintf("item-%d", r.seq)
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, id string) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (r *fakeInventoryRepo) List(_ context.Context) ([]domain.InventoryItem, error) {
	out := make([]domain.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, item *domain.InventoryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]domain.Client
	seq     int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]domain.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *domain.Client) error {
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("client-%d", r.seq)
	}
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Phone == phone {
			c := c
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClientRepo) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

type fakeKitRepo struct {
	kits map[string]domain.Kit
	seq  int
}

func newFakeKitRepo() *fakeKitRepo {
	return &fakeKitRepo{kits: map[string]domain.Kit{}}
}

func (r *fakeKitRepo) Create(_ context.Context, k *domain.Kit) error {
	if k.ID == "" {
		r.seq++
		k.ID = fmt.Sprintf("kit-%d", r.seq)
	}
	r.kits[k.ID] = *k
	return nil
}

func (r *fakeKitRepo) GetByID(_ context.Context, id string) (*domain.Kit, error) {
	k, ok := r.kits[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &k, nil
}

func (r *fakeKitRepo) List(_ context.Context) ([]domain.Kit, error) {
	out := make([]domain.Kit, 0, len(r.kits))
	for _, k := range r.kits {
		out = append(out, k)
	}
	return out, nil
}

func (r *fakeKitRepo) Update(_ context.Context, k *domain.Kit) error {
	if _, ok := r.kits[k.ID]; !ok {
		return repository.ErrNotFound
	}
	r.kits[k.ID] = *k
	return nil
}

func (r *fakeKitRepo) Delete(_ context.Context, id string) error {
	delete(r.kits, id)
	return nil
}

type fakeRentalRepo struct {
	rentals map[string]domain.Rental
	seq     int
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: map[string]domain.Rental{}}
}

func (r *fakeRentalRepo) Create(_ context.Context, rt *domain.Rental) error {
	if rt.ID == "" {
		r.seq++
		rt.ID = fmt.Sprintf("rental-%d", r.seq)
	}
	r.rentals[rt.ID] = *rt
	return nil
}

func (r *fakeRentalRepo) GetByID(_ context.Context, id string) (*domain.Rental, error) {
	rt, ok := r.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rt, nil
}

func (r *fakeRentalRepo) List(_ context.Context) ([]domain.Rental, error) {
	out := make([]domain.Rental, 0, len(r.rentals))
	for _, rt := range r.rentals {
		out = append(out, rt)
	}
	return out, nil
}

func (r *fakeRentalRepo) Update(_ context.Context, rt *domain.Rental) error {
	if _, ok := r.rentals[rt.ID]; !ok {
		return repository.ErrNotFound
	}
	r.rentals[rt.ID] = *rt
	return nil
}

type fakeExpenseRepo struct {
	expenses []domain.Expense
	seq      int
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *domain.Expense) error {
	if e.ID == "" {
		r.seq++
		e.ID = fmt.Sprintf("expense-%d", r.seq)
	}
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *fakeExpenseRepo) List(_ context.Context) ([]domain.Expense, error) {
	return append([]domain.Expense(nil), r.expenses...), nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id string) error {
	kept := r.expenses[:0]
	for _, e := range r.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.expenses = kept
	return nil
}

type fakeRevenueRepo struct {
	revenues []domain.Revenue
	seq      int
}

func (r *fakeRevenueRepo) Create(_ context.Context, rev *domain.Revenue) error {
	if rev.ID == "" {
		r.seq++
		rev.ID = fmt.Sprintf("revenue-%d", r.seq)
	}
	r.revenues = append(r.revenues, *rev)
	return nil
}

func (r *fakeRevenueRepo) List(_ context.Context) ([]domain.Revenue, error) {
	return append([]domain.Revenue(nil), r.revenues...), nil
}

func (r *fakeRevenueRepo) Delete(_ context.Context, id string) error {
	kept := r.revenues[:0]
	for _, rev := range r.revenues {
		if rev.ID != id {
			kept = append(kept, rev)
		}
	}
	r.revenues = kept
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.CompanySettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.CompanySettings, error) {
	if r.settings == nil {
		return nil, repository.ErrNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *domain.CompanySettings) error {
	copied := *s
	r.settings = &copied
	return nil
}

// seedItem adds an available inventory item and returns its id.
func seedItem(r *fakeInventoryRepo, name string, qty int, priceCents int64) string {
	item := domain.InventoryItem{
		Name:       name,
		Quantity:   qty,
		PriceCents: priceCents,
		Status:     domain.ItemStatusAvailable,
	}
	_ = r.Create(context.Background(), &item)
	return item.ID
}

func seedClient(r *fakeClientRepo, name, phone string) string {
	c := domain.Client{Type: domain.ClientTypeIndividual, Name: name, Phone: phone}
	_ = r.Create(context.Background(), &c)
	return c.ID
}
