//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/domain/repositories"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/pom"
)

// StubProjectRepository serves pom.xml contents from memory and records saves.
type StubProjectRepository struct {
	mu sync.Mutex

	// --- Load ---
	Contents map[string]string // path -> pom.xml
	LoadErr  error
	Loaded   []string

	// --- Save ---
	SaveErr error
	Saved   map[string]string // path -> written pom.xml
}

var _ repositories.ProjectRepository = (*StubProjectRepository)(nil)

// NewStubProjectRepository creates a stub serving the given files.
func NewStubProjectRepository(contents map[string]string) *StubProjectRepository {
	return &StubProjectRepository{
		Contents: contents,
		Saved:    make(map[string]string),
	}
}

func (s *StubProjectRepository) Load(_ context.Context, path string) (entities.ProjectDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Loaded = append(s.Loaded, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	content, ok := s.Contents[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return pom.Parse(path, []byte(content))
}

func (s *StubProjectRepository) Save(_ context.Context, doc entities.ProjectDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	document, ok := doc.(*pom.Document)
	if !ok {
		return fmt.Errorf("unexpected document type %T", doc)
	}
	data, err := document.Bytes()
	if err != nil {
		return err
	}
	s.Saved[doc.Path()] = string(data)
	s.Contents[doc.Path()] = string(data)
	return nil
}
