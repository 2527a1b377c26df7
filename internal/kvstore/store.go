// Package kvstore is the durable key-value storage the recipe stores persist into.
// Values are opaque strings; the stores keep JSON text in them.
package kvstore

import (
	"context"
	"errors"
	"io"
)

// Store is an asynchronous durable key-value store
type Store interface {
	// Get returns the value for key. ok is false when the key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Pinger is implemented by backends that can report connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// Sentinel errors returned by the JSON helpers
var (
	ErrRead      = errors.New(ErrMsgRead)
	ErrWrite     = errors.New(ErrMsgWrite)
	ErrMalformed = errors.New(ErrMsgMalformed)
	ErrClosed    = errors.New(ErrMsgClosed)
)

// Ping checks s when it supports it; stores without a health check are always healthy.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close releases s when it holds resources
func Close(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Checker adapts s to a health check, for stores that may not implement Pinger
func Checker(s Store) Pinger {
	return checker{store: s}
}

type checker struct {
	store Store
}

func (c checker) Ping(ctx context.Context) error {
	return Ping(ctx, c.store)
}
