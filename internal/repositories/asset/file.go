package asset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileConfig holds configuration for the file-backed asset repository
type FileConfig struct {
	// Dir is the directory holding question images (the tanks/ folder)
	Dir string
}

// fileRepository serves question images from a local directory
type fileRepository struct {
	dir string
}

// NewFile creates a file-backed asset repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("dir cannot be empty")
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat asset dir: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("asset path %q is not a directory", cfg.Dir)
	}

	return &fileRepository{
		dir: cfg.Dir,
	}, nil
}

// GetAsset returns the image file for a question ID
func (r *fileRepository) GetAsset(ctx context.Context, input *GetAssetInput) (*GetAssetOutput, error) {
	if input == nil || input.QuestionID == "" {
		return nil, errors.New("question ID cannot be empty")
	}

	// Question IDs are bare file names; never let one escape the asset dir
	name := filepath.Base(input.QuestionID)

	file, err := os.Open(filepath.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %q: %w", name, err)
	}

	return &GetAssetOutput{
		Name:   name,
		Reader: file,
	}, nil
}
