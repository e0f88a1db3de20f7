// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"salespulse/internal/domain/entity"
)

// ManagerRepository defines the interface for manager-related database operations.
type ManagerRepository interface {
	// Upsert creates the manager or, when the name already exists, updates
	// its city. The manager's ID and timestamps are populated from the
	// persisted row either way.
	Upsert(ctx context.Context, manager *entity.Manager) error

	// FindAll retrieves the whole roster ordered by name.
	FindAll(ctx context.Context) ([]*entity.Manager, error)
}
