// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"batulens/internal/domain/entity"
)

// ErrVisitNotFound is a domain-specific error returned when a visit record is not found.
var ErrVisitNotFound = errors.New("visit record not found")

// VisitRepository defines the standard operations for the kunjungan store.
type VisitRepository interface {
	// ListAll returns every visit record, sorted by name for deterministic
	// downstream matching.
	ListAll(ctx context.Context) ([]*entity.VisitRecord, error)

	// FindByName retrieves a single record by its exact nama_wisata.
	FindByName(ctx context.Context, name string) (*entity.VisitRecord, error)

	// Create persists a new visit record.
	Create(ctx context.Context, record *entity.VisitRecord) error

	// Update modifies the count of an existing record.
	Update(ctx context.Context, record *entity.VisitRecord) error

	// Delete removes the record with the given name.
	Delete(ctx context.Context, name string) error
}
