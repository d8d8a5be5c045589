package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/farmsync/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-i", "-l", "-r", "-t", "-b"}

// parseFlags populates Config fields from command-line flags.
//
//	-a string   address and port of the remote sink
//	-d string   path of the local database file
//	-i int      online check interval in seconds
//	-l string   log level (debug, info, warn, error)
//	-r int      max delivery attempts per queued operation, 0 = unlimited
//	-t duration timeout of a single remote call
//	-b string   bucket for operation images
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("farmsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access the remote sink")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.MaxRetries, "r", cfg.MaxRetries, "max delivery attempts, 0 = unlimited")
	fs.DurationVar(&cfg.RemoteCallTimeout, "t", cfg.RemoteCallTimeout, "remote call timeout")
	fs.StringVar(&cfg.AttachmentBucket, "b", cfg.AttachmentBucket, "attachment bucket")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "i" {
			return
		}
		if *onlineCheckInterval <= 0 {
			err = fmt.Errorf("parse flags: online check interval must be positive, got %d", *onlineCheckInterval)
			return
		}
		cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	})
	return err
}
