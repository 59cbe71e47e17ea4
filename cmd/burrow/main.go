package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studiowebux/burrow/internal/cli"
	"github.com/studiowebux/burrow/internal/config"
	"github.com/studiowebux/burrow/internal/logging"
	"github.com/studiowebux/burrow/internal/tui"
	"github.com/studiowebux/burrow/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "burrow [url]",
	Short: "burrow - a terminal Gopher client",
	Long: `burrow is an interactive terminal client for the Gopher protocol.

Run without arguments to open the start page, or provide a Gopher URL.
URLs look like gopher://host[:port]/type/selector; a bare host works
too. gophers:// requests TLS for that host.

Examples:
  burrow                                   # Start at the home page
  burrow gopher.floodgap.com               # Open a gopherhole
  burrow -t gopher://example.org           # Force TLS for the session
  burrow -o gopher://example.org           # Route through Tor (SOCKS5)
  burrow -r gopher://example.org/1/ | less # Dump the raw response
  burrow -p gopher://example.org/0/about   # Print the rendered document`,
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Flags override config file values.
		if flagTLS {
			cfg.TLS = true
		}
		if flagTor {
			cfg.Tor = true
		}

		url := ""
		if len(args) > 0 {
			url = args[0]
		}
		if flagLocal {
			url = "gopher://127.0.0.1:7070"
		}

		if flagRaw || flagPrint {
			if url == "" {
				return fmt.Errorf("--raw and --print need a URL")
			}
			return cli.Run(cli.RunOptions{URL: url, Raw: flagRaw, Config: cfg})
		}

		cleanup, err := logging.Setup(flagDebug, config.DebugLogPath())
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		defer cleanup()

		return tui.Run(cfg, url)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("burrow v%s\n", version.Version)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		available, latest, err := version.CheckForUpdate(ctx, version.Version)
		if err != nil {
			fmt.Fprintf(os.Stderr, "release check failed: %v\n", err)
			return nil
		}
		if available {
			fmt.Printf("a newer release is available: v%s\n", latest)
		} else {
			fmt.Println("you are on the latest release")
		}
		return nil
	},
}

var (
	flagTLS      bool
	flagTor      bool
	flagRaw      bool
	flagPrint    bool
	flagLocal    bool
	flagConfig   string
	flagNoConfig bool
	flagDebug    bool
)

func init() {
	rootCmd.Flags().BoolVarP(&flagTLS, "tls", "t", false, "Use TLS for every connection")
	rootCmd.Flags().BoolVarP(&flagTor, "tor", "o", false, "Route connections through the Tor SOCKS5 proxy")
	rootCmd.Flags().BoolVarP(&flagRaw, "raw", "r", false, "Fetch the URL, write the raw response to stdout, exit")
	rootCmd.Flags().BoolVarP(&flagPrint, "print", "p", false, "Fetch the URL, write the rendered document to stdout, exit")
	rootCmd.Flags().BoolVarP(&flagLocal, "local", "l", false, "Open gopher://127.0.0.1:7070")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Alternate config file")
	rootCmd.Flags().BoolVarP(&flagNoConfig, "no-config", "C", false, "Skip config file loading")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to the state directory")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config file: -C skips it entirely, -c names
// an alternate path, otherwise the XDG default is used (absent file =
// defaults).
func loadConfig() (config.Config, error) {
	if flagNoConfig {
		return config.Default(), nil
	}
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
