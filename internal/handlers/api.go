// Package handlers wires the catalog, ingestion and pricing packages to the
// HTTP surface.
package handlers

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/catalog"
)

// API bundles the handler dependencies. The catalog store is the only shared
// state; it is replaced wholesale on upload, never mutated incrementally.
type API struct {
	store          *catalog.Store
	logger         *zerolog.Logger
	maxUploadBytes int64

	// uploading gates the upload route: while one workbook is being
	// processed, further uploads are rejected rather than queued.
	uploading atomic.Bool
}

// New creates the API handler set.
func New(store *catalog.Store, logger *zerolog.Logger, maxUploadBytes int64) *API {
	return &API{
		store:          store,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}
