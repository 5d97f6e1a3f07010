package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/randomusers/internal/flagx"
)

// parseFlags populates selected Config fields from the command line.
//
// Supported flags:
//
//	-u string   base URL of the random-user API
//	-p int      page size
//	-t int      request timeout in seconds
//	-d string   bookmarks database DSN
//
// Args are pre-filtered through flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-p", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "base URL of the random-user API")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "users per page")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "bookmarks database DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
