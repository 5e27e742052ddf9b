// Package service contains the business logic backing the HTTP handlers and
// CLI commands.
package service

import "go.uber.org/zap"

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger *zap.Logger
}
