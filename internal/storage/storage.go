package storage

import "poolcalc/internal/model"

// Storage defines a sink for computed quote records.
type Storage interface {
	PutQuote(record model.QuoteRecord) error
}
