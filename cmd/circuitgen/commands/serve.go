package commands

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/panyam/circuitgen/console"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the circuitgen web console",
	Long: `Start the circuitgen web console.

The console serves the sketch page at / and the JSON generate endpoint at
/api/generate ({"description": "..."} -> {"svg": "..."}).

Examples:
  circuitgen serve
  circuitgen serve --port 9090
  curl -X POST localhost:8080/api/generate -d '{"description":"R1とC1を接続"}'`,
	Run: func(cmd *cobra.Command, args []string) {
		// Optional .env for host/port overrides.
		if err := godotenv.Load(); err == nil {
			log.Println("loaded configuration from .env")
		}

		templatesDir, _ := cmd.Flags().GetString("templates")
		webServer := console.NewWebServer(templatesDir)

		host, port := getServeConfig()
		addr := fmt.Sprintf("%s:%d", host, port)
		server := &http.Server{
			Addr:    addr,
			Handler: webServer.Handler(),
		}

		heading := color.New(color.FgCyan, color.Bold)
		heading.Printf("circuitgen console %s\n", Version)
		fmt.Printf("  Sketch page:  http://%s/\n", addr)
		fmt.Printf("  Generate API: http://%s/api/generate\n", addr)

		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Server failed to start: %v", err)
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		fmt.Println("\nShutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	},
}

// getServeConfig resolves host and port from flags first, then environment,
// then defaults.
func getServeConfig() (host string, port int) {
	host = serveHost
	if host == "" {
		host = os.Getenv("CIRCUITGEN_HOST")
	}
	if host == "" {
		host = "localhost"
	}

	port = servePort
	if port == 0 {
		if envPort := os.Getenv("CIRCUITGEN_PORT"); envPort != "" {
			if p, err := strconv.Atoi(envPort); err == nil {
				port = p
			}
		}
	}
	if port == 0 {
		port = 8080
	}
	return host, port
}

func init() {
	serveCmd.Flags().String("templates", console.DefaultTemplatesDir, "Directory holding console page templates")
	rootCmd.AddCommand(serveCmd)
}
