package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/neontetris/internal/flagx"
	"github.com/dmitrijs2005/neontetris/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let a
// file override only what it mentions; absent keys keep earlier values.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	DatabaseDriver   *string         `json:"database_driver"`
	DatabaseDSN      *string         `json:"database_dsn"`
	ConnectTimeout   *timex.Duration `json:"connect_timeout"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	PasswordHasher   *string         `json:"password_hasher"`
	AtomicSave       *bool           `json:"atomic_save"`
	MaxBodyBytes     *int64          `json:"max_body_bytes"`
	LogLevel         *string         `json:"log_level"`
	AssetSource      *string         `json:"asset_source"`
	StaticDir        *string         `json:"static_dir"`
	S3Bucket         *string         `json:"s3_bucket"`
	S3Prefix         *string         `json:"s3_prefix"`
	S3Region         *string         `json:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint"`
	S3RootUser       *string         `json:"s3_root_user"`
	S3RootPassword   *string         `json:"s3_root_password"`
}

// parseJson overlays values from the file named by -c / -config. Without the
// flag nothing is loaded. An unreadable or invalid file panics: the server
// must not start on a config it did not understand.
func parseJson(config *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	if c.ConnectTimeout != nil {
		config.ConnectTimeout = c.ConnectTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	setString(&config.PasswordHasher, c.PasswordHasher)
	if c.AtomicSave != nil {
		config.AtomicSave = *c.AtomicSave
	}
	if c.MaxBodyBytes != nil {
		config.MaxBodyBytes = *c.MaxBodyBytes
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.AssetSource, c.AssetSource)
	setString(&config.StaticDir, c.StaticDir)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Prefix, c.S3Prefix)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
