package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
)

// Accounts is the durable account collection: an ordered list stored under a
// single key. It is shared by every profile's session store.
type Accounts struct {
	storage storage.Storage

	// mu serialises read-modify-write cycles within this process
	mu sync.Mutex
}

// NewAccounts creates an account collection over the given storage
func NewAccounts(s storage.Storage) *Accounts {
	return &Accounts{storage: s}
}

// List returns every account in insertion order. A missing collection is empty.
func (a *Accounts) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	err := storage.GetJSON(ctx, a.storage, storage.AccountsKey, &accounts)
	if errors.Is(err, model.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read account collection: %w", err)
	}
	return accounts, nil
}

// FindByEmail returns the first account whose email matches exactly
func (a *Accounts) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	accounts, err := a.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email {
			return &accounts[i], nil
		}
	}
	return nil, model.ErrAccountNotFound
}

// Update reads the collection, applies fn and writes the result back.
// If fn returns an error nothing is written.
func (a *Accounts) Update(ctx context.Context, fn func([]model.Account) ([]model.Account, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	accounts, err := a.List(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(accounts)
	if err != nil {
		return err
	}
	if err := storage.SetJSON(ctx, a.storage, storage.AccountsKey, updated); err != nil {
		return fmt.Errorf("write account collection: %w", err)
	}
	return nil
}
