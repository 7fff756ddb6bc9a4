package store

import (
	"errors"
	"strings"
)

const (
	RepositoryBackendFile  = "file"
	RepositoryBackendBbolt = "bbolt"
)

type Repository interface {
	Notebook() NotebookStore
	Backend() string
	Close() error
}

type RepositoryPaths struct {
	NotebookPath string
	DBPath       string
}

type fileRepository struct {
	notebook NotebookStore
}

func NewFileRepository(paths RepositoryPaths) Repository {
	return &fileRepository{notebook: NewFileNotebookStore(paths.NotebookPath)}
}

func (r *fileRepository) Notebook() NotebookStore {
	return r.notebook
}

func (r *fileRepository) Backend() string {
	return RepositoryBackendFile
}

func (r *fileRepository) Close() error {
	return nil
}

func OpenRepository(paths RepositoryPaths, backend string) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", RepositoryBackendFile:
		return NewFileRepository(paths), nil
	case RepositoryBackendBbolt:
		if strings.TrimSpace(paths.DBPath) == "" {
			return nil, errors.New("db path is required for bbolt repository")
		}
		return NewBboltRepository(paths.DBPath)
	default:
		return nil, errors.New("unsupported repository backend: " + backend)
	}
}
