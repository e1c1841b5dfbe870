package store

import (
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
)

type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages wires every repository to db. New rows get UUIDv7 ids.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository: NewUserRepository(db, ids, logger),
		PostRepository: NewPostRepository(db, ids, logger),
	}
}
