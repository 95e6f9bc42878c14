// Package main is the entry point for the sejmkit gateway: a tool dispatch
// process fronting the Polish legal-act registry, exposed over stdio or
// HTTP framing.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/config"
	"github.com/sejmkit/gateway/internal/dispatcher"
	"github.com/sejmkit/gateway/internal/monitoring"
)

const (
	sejmkitGreen = "\033[38;2;23;128;68m"
	bold         = "\033[1m"
	reset        = "\033[0m"
)

const banner = `
  ███████╗███████╗     ██╗███╗   ███╗██╗  ██╗██╗████████╗
  ██╔════╝██╔════╝     ██║████╗ ████║██║ ██╔╝██║╚══██╔══╝
  ███████╗█████╗       ██║██╔████╔██║█████╔╝ ██║   ██║
  ╚════██║██╔══╝  ██   ██║██║╚██╔╝██║██╔═██╗ ██║   ██║
  ███████║███████╗╚█████╔╝██║ ╚═╝ ██║██║  ██╗██║   ██║
  ╚══════╝╚══════╝ ╚════╝ ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝   ╚═╝
`

func printBanner() {
	fmt.Print(sejmkitGreen + bold + banner + reset + "\n")
}

// loadEnvFiles loads .env from standard locations before the environment is
// read, mirroring the teacher's bootstrap order.
func loadEnvFiles() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		_ = godotenv.Load()
		return
	}
	configEnv := filepath.Join(homeDir, ".config", "sejmkit", ".env")
	if _, err := os.Stat(configEnv); err == nil {
		_ = godotenv.Load(configEnv)
	}
	_ = godotenv.Load()
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "-v", "--version":
			printVersion()
			return
		case "help", "-h", "--help":
			printHelp()
			return
		case "serve":
			runServe()
			return
		}
	}
	runServe()
}

func printVersion() {
	loadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("sejmkit-gateway (config error)")
		return
	}
	fmt.Printf("%s %s\n", cfg.Server.Name, cfg.Server.Version)
}

func printHelp() {
	printBanner()
	fmt.Println("sejmkit-gateway - RPC tool gateway for the Polish legal-act registry")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sejmkit-gateway [serve]   Start the gateway (default)")
	fmt.Println("  sejmkit-gateway version   Print version information")
	fmt.Println("  sejmkit-gateway help      Show this help message")
	fmt.Println()
	fmt.Println("Configuration is read entirely from SEJMKIT_* environment variables;")
	fmt.Println("see SPEC_FULL.md section 6 for the documented keys and defaults.")
}

// logFormatToWriterFormat maps SEJMKIT_LOG_FORMAT's documented values
// ("text"/"json") onto monitoring.LoggerConfig's writer-selection values
// ("console"/anything else).
func logFormatToWriterFormat(format string) string {
	if format == "text" {
		return "console"
	}
	return format
}

func runServe() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	monitoring.Global(monitoring.LoggerConfig{
		Level:  cfg.Logging.Level,
		Format: logFormatToWriterFormat(cfg.Logging.Format),
	})

	printBanner()
	log.Info().Str("transport", cfg.Server.Transport).Str("version", cfg.Server.Version).
		Msg("sejmkit-gateway starting")

	disp := dispatcher.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	if err := disp.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("dispatcher start failed")
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Info().Msg("shutdown signal received")
		cancel()
	}()

	switch cfg.Server.Transport {
	case "http":
		serveHTTP(ctx, cfg, disp)
	default:
		serveStdio(ctx, disp)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := disp.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("dispatcher stop error")
	}
	log.Info().Msg("sejmkit-gateway stopped")
}

// stdioRequest is one line of stdin framing: a tool name plus its params.
type stdioRequest struct {
	ID     string         `json:"id,omitempty"`
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// serveStdio reads newline-delimited JSON tool-call requests from stdin and
// writes the enriched response to stdout, one JSON line per call, until
// stdin closes or ctx is canceled. The request id is attached to the call's
// context and is not written into the response line. Lines are handled one
// at a time.
func serveStdio(ctx context.Context, disp *dispatcher.Dispatcher) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req stdioRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			log.Warn().Err(err).Msg("malformed stdio request line")
			continue
		}

		callCtx := monitoring.WithRequestIDContext(ctx, requestIDOrNew(req.ID))
		result := disp.Call(callCtx, req.Tool, req.Params)

		fmt.Fprintln(out, result)
		out.Flush()
	}
}

func requestIDOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

// serveHTTP exposes POST /tools/{name} (JSON body = params) and GET /health.
func serveHTTP(ctx context.Context, cfg *config.Config, disp *dispatcher.Dispatcher) {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": cfg.Server.Version,
			"server":  cfg.Server.Name,
		})
	})

	mux.HandleFunc("/tools/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/tools/")
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		var params map[string]any
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
				http.Error(w, "invalid JSON body", http.StatusBadRequest)
				return
			}
		}

		callCtx := monitoring.WithRequestIDContext(r.Context(), requestID)
		result := disp.Call(callCtx, name, params)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", requestID)
		fmt.Fprint(w, result)
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("http transport listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("http server error")
	}
}
