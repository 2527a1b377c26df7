package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON reads key and decodes it into v.
// It reports false with a nil error when the key is absent, wraps ErrRead
// when the backend fails, and wraps ErrMalformed when the value does not decode.
func GetJSON(ctx context.Context, s Store, key string, v interface{}) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrRead, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// SetJSON encodes v and writes it under key
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: encode: %v", ErrWrite, key, err)
	}
	if err := s.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, key, err)
	}
	return nil
}
