// Package assets reads the pre-built frontend files the server hands out for
// non-API paths. The files come from a local build directory or an S3 bucket.
package assets

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/neontetris/internal/server/config"
)

const (
	SourceDir = "dir"
	SourceS3  = "s3"
)

// Source opens a file by its slash-separated path relative to the asset
// root. Missing files, directories and names outside the root all return
// common.ErrorNotFound.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// New builds the Source selected by cfg.AssetSource.
func New(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.AssetSource {
	case SourceDir, "":
		return NewDirSource(cfg.StaticDir), nil
	case SourceS3:
		return NewS3Source(ctx, S3Options{
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
		})
	default:
		return nil, fmt.Errorf("unknown asset source %q", cfg.AssetSource)
	}
}
