package config

import (
	"fmt"
	"strings"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Storage backends.
const (
	StorageFilesystem = "filesystem"
	StorageS3         = "s3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth.token_secret must be at least 32 characters (got %d)", len(c.Auth.TokenSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required when store.driver is %q", StorePostgres)
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", StoreMemory, StorePostgres, c.Store.Driver)
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.RateLimit.AssistantPerMinute <= 0 || c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0")
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	if m.PreviouslyFeaturedLimit < 0 {
		return fmt.Errorf("previously_featured_limit must be >= 0 (got %d)", m.PreviouslyFeaturedLimit)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	switch s.Type {
	case StorageFilesystem:
		if s.FSRoot == "" {
			return fmt.Errorf("fs_root is required for %q storage", StorageFilesystem)
		}
	case StorageS3:
		if s.S3Bucket == "" {
			return fmt.Errorf("s3_bucket is required for %q storage", StorageS3)
		}
	default:
		return fmt.Errorf("type must be %q or %q (got %q)", StorageFilesystem, StorageS3, s.Type)
	}
	return nil
}
