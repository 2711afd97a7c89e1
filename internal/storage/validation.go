// Package storage provides the persistence layer for the closet catalog.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/b1443/ClosetManager/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidRecord = errors.New("invalid clothing record")
	ErrNotFound      = errors.New("record not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecord validates a clothing record before persistence.
func validateRecord(rec *model.ClothingRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if rec.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidRecord)
	}
	if rec.DateAdded.IsZero() {
		return fmt.Errorf("%w: missing date added", ErrInvalidRecord)
	}
	if !rec.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, rec.Type)
	}
	if !rec.Material.Valid() {
		return fmt.Errorf("%w: unknown material %q", ErrInvalidRecord, rec.Material)
	}
	if rec.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidRecord)
	}
	return nil
}
