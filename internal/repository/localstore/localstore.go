// Package localstore satisfies the repository contract without a Firestore
// project: each collection is one JSON file holding the entire collection as
// a serialized array, and ids are generated as local_<timestamp>. It exists
// so the console keeps working when no remote store is configured.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

// Store bundles every repository backed by one data directory.
type Store struct {
	repository.Store
}

// NewStore creates the data directory if needed and wires all repositories.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local store dir: %w", err)
	}
	files := &fileSet{dir: dataDir}
	return &Store{
		Store: repository.Store{
			InventoryRepository: &inventoryRepository{files: files},
			ClientRepository:    &clientRepository{files: files},
			KitRepository:       &kitRepository{files: files},
			RentalRepository:    &rentalRepository{files: files},
			ExpenseRepository:   &expenseRepository{files: files},
			RevenueRepository:   &revenueRepository{files: files},
			SettingsRepository:  &settingsRepository{files: files},
		},
	}, nil
}

// fileSet serializes access to the per-collection JSON files. One mutex for
// the whole set is enough at single-operator scale.
type fileSet struct {
	dir string
	mu  sync.Mutex
}

func (f *fileSet) path(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}

func readCollection[T any](f *fileSet, collection string) ([]T, error) {
	data, err := os.ReadFile(f.path(collection))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse collection %s: %w", collection, err)
	}
	return records, nil
}

func writeCollection[T any](f *fileSet, collection string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", collection, err)
	}
	if err := os.WriteFile(f.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

// newLocalID generates the local_<timestamp> ids the fallback mode uses.
func newLocalID() string {
	return fmt.Sprintf("local_%d", time.Now().UnixMilli())
}

// collection implements the common CRUD shape over one JSON file. The id
// accessors let each repository expose its own domain type.
type collection[T any] struct {
	files *fileSet
	name  string
	getID func(*T) string
	setID func(*T, string)
}

func (c *collection[T]) insert(record *T) error {
	c.files.mu.Lock()
	defer c.files.mu.Unlock()

	records, err := readCollection[T](c.files, c.name)
	if err != nil {
		return err
	}
	if c.getID(record) == "" {
		c.setID(record, newLocalID())
	}
	records = append(records, *record)
	return writeCollection(c.files, c.name, records)
}

func (c *collection[T]) get(id string) (*T, error) {
	c.files.mu.Lock()
	defer c.files.mu.Unlock()

	records, err := readCollection[T](c.files, c.name)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if c.getID(&records[i]) == id {
			record := records[i]
			return &record, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (c *collection[T]) list() ([]T, error) {
	c.files.mu.Lock()
	defer c.files.mu.Unlock()
	return readCollection[T](c.files, c.name)
}

func (c *collection[T]) update(record *T) error {
	c.files.mu.Lock()
	defer c.files.mu.Unlock()

	records, err := readCollection[T](c.files, c.name)
	if err != nil {
		return err
	}
	for i := range records {
		if c.getID(&records[i]) == c.getID(record) {
			records[i] = *record
			return writeCollection(c.files, c.name, records)
		}
	}
	return repository.ErrNotFound
}

func (c *collection[T]) delete(id string) error {
	c.files.mu.Lock()
	defer c.files.mu.Unlock()

	records, err := readCollection[T](c.files, c.name)
	if err != nil {
		return err
	}
	kept := records[:0]
	for i := range records {
		if c.getID(&records[i]) != id {
			kept = append(kept, records[i])
		}
	}
	return writeCollection(c.files, c.name, kept)
}

type inventoryRepository struct {
	files *fileSet
}

func (r *inventoryRepository) coll() *collection[domain.InventoryItem] {
	return &collection[domain.InventoryItem]{
		files: r.files,
		name:  "inventory",
		getID: func(i *domain.InventoryItem) string { return i.ID },
		setID: func(i *domain.InventoryItem, id string) { i.ID = id },
	}
}

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	return r.coll().insert(item)
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return r.coll().get(id)
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return r.coll().list()
}

func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	return r.coll().update(item)
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	return r.coll().delete(id)
}

type clientRepository struct {
	files *fileSet
}

func (r *clientRepository) coll() *collection[domain.Client] {
	return &collection[domain.Client]{
		files: r.files,
		name:  "clients",
		getID: func(c *domain.Client) string { return c.ID },
		setID: func(c *domain.Client, id string) { c.ID = id },
	}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.coll().insert(c)
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return r.coll().get(id)
}

func (r *clientRepository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	clients, err := r.coll().list()
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].Phone == phone {
			c := clients[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	return r.coll().list()
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.coll().update(c)
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	return r.coll().delete(id)
}

type kitRepository struct {
	files *fileSet
}

func (r *kitRepository) coll() *collection[domain.Kit] {
	return &collection[domain.Kit]{
		files: r.files,
		name:  "kits",
		getID: func(k *domain.Kit) string { return k.ID },
		setID: func(k *domain.Kit, id string) { k.ID = id },
	}
}

func (r *kitRepository) Create(ctx context.Context, k *domain.Kit) error {
	return r.coll().insert(k)
}

func (r *kitRepository) GetByID(ctx context.Context, id string) (*domain.Kit, error) {
	return r.coll().get(id)
}

func (r *kitRepository) List(ctx context.Context) ([]domain.Kit, error) {
	return r.coll().list()
}

func (r *kitRepository) Update(ctx context.Context, k *domain.Kit) error {
	return r.coll().update(k)
}

func (r *kitRepository) Delete(ctx context.Context, id string) error {
	return r.coll().delete(id)
}

type rentalRepository struct {
	files *fileSet
}

func (r *rentalRepository) coll() *collection[domain.Rental] {
	return &collection[domain.Rental]{
		files: r.files,
		name:  "rentals",
		getID: func(rt *domain.Rental) string { return rt.ID },
		setID: func(rt *domain.Rental, id string) { rt.ID = id },
	}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	return r.coll().insert(rt)
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	return r.coll().get(id)
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	return r.coll().list()
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	return r.coll().update(rt)
}

type expenseRepository struct {
	files *fileSet
}

func (r *expenseRepository) coll() *collection[domain.Expense] {
	return &collection[domain.Expense]{
		files: r.files,
		name:  "expenses",
		getID: func(e *domain.Expense) string { return e.ID },
		setID: func(e *domain.Expense, id string) { e.ID = id },
	}
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	return r.coll().insert(e)
}

func (r *expenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	return r.coll().list()
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return r.coll().delete(id)
}

type revenueRepository struct {
	files *fileSet
}

func (r *revenueRepository) coll() *collection[domain.Revenue] {
	return &collection[domain.Revenue]{
		files: r.files,
		name:  "revenues",
		getID: func(rev *domain.Revenue) string { return rev.ID },
		setID: func(rev *domain.Revenue, id string) { rev.ID = id },
	}
}

func (r *revenueRepository) Create(ctx context.Context, rev *domain.Revenue) error {
	return r.coll().insert(rev)
}

func (r *revenueRepository) List(ctx context.Context) ([]domain.Revenue, error) {
	return r.coll().list()
}

func (r *revenueRepository) Delete(ctx context.Context, id string) error {
	return r.coll().delete(id)
}

type settingsRepository struct {
	files *fileSet
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.CompanySettings, error) {
	r.files.mu.Lock()
	defer r.files.mu.Unlock()

	records, err := readCollection[domain.CompanySettings](r.files, "settings")
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, repository.ErrNotFound
	}
	s := records[0]
	return &s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s *domain.CompanySettings) error {
	r.files.mu.Lock()
	defer r.files.mu.Unlock()

	s.ID = domain.SettingsID
	return writeCollection(r.files, "settings", []domain.CompanySettings{*s})
}
