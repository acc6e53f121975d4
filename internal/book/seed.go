package book

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Seed reads a JSON array of book payloads from r and adds each through
// the service. It returns the number of books added and stops at the
// first invalid entry.
func Seed(ctx context.Context, svc *Service, r io.Reader) (int, error) {
	var entries []createRequest
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode seed: %w", err)
	}

	for i, entry := range entries {
		if _, err := svc.Add(ctx, entry.toNewBook()); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return len(entries), nil
}
