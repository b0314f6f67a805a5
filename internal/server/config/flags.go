package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/neontetris/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-r string   database driver: pgx | sqlite
//	-d string   database DSN
//	-t int      store connect timeout, seconds
//	-x string   password hasher: sha256 | bcrypt | argon2id
//	-atomic     run save writes in one transaction
//	-l string   log level
//	-m string   asset source: dir | s3
//	-w string   static asset directory
//	-b string   S3 bucket
//	-f string   S3 key prefix
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-u string   S3 access key
//	-p string   S3 secret key
//
// Only these flags are parsed; os.Args is filtered through flagx.Pick first
// so -c / -config (handled by parseJson) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.Pick(os.Args[1:], "a", "r", "d", "t", "x", "atomic", "l", "m", "w", "b", "f", "g", "e", "u", "p")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	connectTimeout := fs.Int("t", int(config.ConnectTimeout.Seconds()), "store connect timeout (in seconds)")
	fs.StringVar(&config.PasswordHasher, "x", config.PasswordHasher, "password hasher (sha256|bcrypt|argon2id)")
	fs.BoolVar(&config.AtomicSave, "atomic", config.AtomicSave, "write user and leaderboard in one transaction")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.AssetSource, "m", config.AssetSource, "asset source (dir|s3)")
	fs.StringVar(&config.StaticDir, "w", config.StaticDir, "static asset directory")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Prefix, "f", config.S3Prefix, "S3 key prefix")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 access key")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only touch the duration when -t was given, so sub-second values from
	// JSON or env survive
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ConnectTimeout = time.Duration(*connectTimeout) * time.Second
		}
	})
}
