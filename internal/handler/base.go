// Package handler defines the HTTP request handlers for the quote API.
package handler

import "go.uber.org/zap"

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *zap.Logger
}
