package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build metadata, overridable via -ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var (
	serverURL string
	serveHost string
	servePort int
)

var rootCmd = &cobra.Command{
	Use:   "circuitgen",
	Short: "circuitgen sketches circuit schematics from plain text",
	Long: `circuitgen turns free-form circuit descriptions (Japanese or English)
into simple SVG schematics. Describe the components and how they connect;
circuitgen extracts them and lays them out as a series circuit.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "circuitgen server URL (default: CIRCUITGEN_SERVER_URL env var)")
	rootCmd.PersistentFlags().StringVar(&serveHost, "host", "", "Server host (default: CIRCUITGEN_HOST env var or localhost)")
	rootCmd.PersistentFlags().IntVar(&servePort, "port", 0, "Server port (default: CIRCUITGEN_PORT env var or 8080)")
}
