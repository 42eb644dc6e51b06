package asset

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tanktrivia/internal/repositories/asset Repository

import (
	"context"
)

// Repository defines the interface for question image retrieval
type Repository interface {
	// GetAsset returns the displayable image for a question ID.
	// The caller owns the reader and must close it.
	GetAsset(ctx context.Context, input *GetAssetInput) (*GetAssetOutput, error)
}
