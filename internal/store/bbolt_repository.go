package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"slate/internal/types"
)

var (
	bucketNotebook = []byte("notebook")
	keyNotes       = []byte("notes")
)

type bboltRepository struct {
	db       *bolt.DB
	notebook NotebookStore
}

func NewBboltRepository(path string) (Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("repository db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := initBboltSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &bboltRepository{
		db:       db,
		notebook: &bboltNotebookStore{db: db},
	}, nil
}

func initBboltSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketNotebook)
		return err
	})
}

func (r *bboltRepository) Notebook() NotebookStore {
	return r.notebook
}

func (r *bboltRepository) Backend() string {
	return RepositoryBackendBbolt
}

func (r *bboltRepository) Close() error {
	return r.db.Close()
}

type bboltNotebookStore struct {
	db *bolt.DB
}

func (s *bboltNotebookStore) Load(ctx context.Context) ([]*types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var notes []*types.Note
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNotebook)
		if bucket == nil {
			return nil
		}
		data := bucket.Get(keyNotes)
		if len(data) == 0 {
			return nil
		}
		var file notebookFile
		if err := json.Unmarshal(data, &file); err != nil {
			return errors.Join(ErrMalformedNotebook, err)
		}
		notes = cloneNotes(file.Notes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*types.Note{}
	}
	return notes, nil
}

func (s *bboltNotebookStore) Save(ctx context.Context, notes []*types.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(notebookFile{
		Version: notebookFileVersion,
		Notes:   cloneNotes(notes),
	})
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketNotebook)
		if err != nil {
			return err
		}
		return bucket.Put(keyNotes, data)
	})
}
