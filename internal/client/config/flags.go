package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/neontetris/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-s string   base URL of the game server
//	-t int      request timeout in seconds
func parseFlags(cfg *Config) {
	args := flagx.Pick(os.Args[1:], "s", "t")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "base URL of the game server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
