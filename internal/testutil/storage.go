package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/mcoot/mindcare/internal/storage"
)

// ErrInjected is the default error returned by FaultyStorage
var ErrInjected = errors.New("injected storage fault")

// FaultyStorage wraps a Storage and fails selected operations on demand
type FaultyStorage struct {
	storage.Storage

	mu         sync.Mutex
	failGet    bool
	failSet    bool
	failDelete bool
}

// NewFaultyStorage wraps inner
func NewFaultyStorage(inner storage.Storage) *FaultyStorage {
	return &FaultyStorage{Storage: inner}
}

// FailGets makes every Get return ErrInjected until reset
func (f *FaultyStorage) FailGets(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGet = fail
}

// FailSets makes every Set return ErrInjected until reset
func (f *FaultyStorage) FailSets(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet = fail
}

// FailDeletes makes every Delete return ErrInjected until reset
func (f *FaultyStorage) FailDeletes(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failDelete = fail
}

func (f *FaultyStorage) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return f.Storage.Get(ctx, key)
}

func (f *FaultyStorage) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Storage.Set(ctx, key, value)
}

func (f *FaultyStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failDelete
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Storage.Delete(ctx, key)
}
