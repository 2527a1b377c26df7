// Package kvstoretest provides a controllable in-memory store for tests
package kvstoretest

import (
	"context"
	"errors"
	"sync"
)

// ErrInjected is returned by Fake when a failure has been switched on
var ErrInjected = errors.New("injected storage failure")

// Fake is an in-memory store whose reads and writes can be made to fail
type Fake struct {
	mu      sync.Mutex
	values  map[string]string
	failGet bool
	failSet bool
	gets    int
	sets    int
}

// New creates an empty Fake
func New() *Fake {
	return &Fake{values: make(map[string]string)}
}

// Get implements kvstore.Store
func (f *Fake) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.failGet {
		return "", false, ErrInjected
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements kvstore.Store
func (f *Fake) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.failSet {
		return ErrInjected
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.values[key] = value
	return nil
}

// FailReads toggles read failures
func (f *Fake) FailReads(fail bool) {
	f.mu.Lock()
	f.failGet = fail
	f.mu.Unlock()
}

// FailWrites toggles write failures
func (f *Fake) FailWrites(fail bool) {
	f.mu.Lock()
	f.failSet = fail
	f.mu.Unlock()
}

// Put stores a raw value directly, bypassing failure injection
func (f *Fake) Put(key, value string) {
	f.mu.Lock()
	f.values[key] = value
	f.mu.Unlock()
}

// Raw returns the stored value for key, bypassing failure injection
func (f *Fake) Raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Gets returns the number of Get calls
func (f *Fake) Gets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

// Sets returns the number of Set calls
func (f *Fake) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}
