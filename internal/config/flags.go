package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/fleetdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the database file (default from Config)
//	-t int      token lifetime in minutes (default from Config)
//	-b int      search debounce in milliseconds (default from Config)
//	-f string   log format, "text" or "json" (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-b", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	tokenTTL := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token lifetime (in minutes)")
	debounce := fs.Int("b", int(cfg.SearchDebounce.Milliseconds()), "search debounce (in milliseconds)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*tokenTTL) * time.Minute
	cfg.SearchDebounce = time.Duration(*debounce) * time.Millisecond
}
