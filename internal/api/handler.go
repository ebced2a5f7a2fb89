package api

import (
	"arrivals-backend/internal/ingest"
	"arrivals-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	ingest  *ingest.Service
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, ingestSvc *ingest.Service, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:   s,
		ingest:  ingestSvc,
		webpush: webpushOptions,
	}
}
