package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrEmptyBody      = errors.New("request body is empty")
	ErrTrailingValues = errors.New("request body must only contain a single JSON value")
)

// DecodeJSON decodes a single JSON value from the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return ErrTrailingValues
	}
	return nil
}
