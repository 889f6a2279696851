package pom

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

const defaultFileMode = 0o644

// ProjectRepository reads and writes pom.xml files on the local filesystem.
type ProjectRepository struct{}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// NewProjectRepository creates a ProjectRepository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Load parses the descriptor at path.
func (it *ProjectRepository) Load(ctx context.Context, path string) (entities.ProjectDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	doc, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %s (%d bytes)", path, len(data))
	return doc, nil
}

// Save writes doc back to the file it was loaded from, keeping its mode.
func (it *ProjectRepository) Save(ctx context.Context, doc entities.ProjectDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	document, ok := doc.(*Document)
	if !ok {
		return fmt.Errorf("cannot save document of type %T", doc)
	}

	data, err := document.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize %q: %w", document.Path(), err)
	}

	mode := os.FileMode(defaultFileMode)
	if info, statErr := os.Stat(document.Path()); statErr == nil {
		mode = info.Mode().Perm()
	}

	if writeErr := os.WriteFile(document.Path(), data, mode); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", document.Path(), writeErr)
	}
	return nil
}
