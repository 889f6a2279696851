package repositories

import (
	"context"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
)

// ProjectRepository loads and stores project descriptors.
// Loaded documents are mutated in place by fixes and written back with Save.
type ProjectRepository interface {
	Load(ctx context.Context, path string) (entities.ProjectDocument, error)
	Save(ctx context.Context, doc entities.ProjectDocument) error
}
