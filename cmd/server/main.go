package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ignite/email-validator/internal/api"
	"github.com/ignite/email-validator/internal/config"
	"github.com/ignite/email-validator/internal/disposable"
	"github.com/ignite/email-validator/internal/storage"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func main() {
	log.Println("Email Validation Service starting")

	// Load configuration
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("[config] environment=%s api_prefix=%s", cfg.Server.Environment, cfg.API.Prefix())

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	// Open external stores (both optional; startup never blocks on them)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores := storage.Open(ctx, cfg.Storage)
	log.Println("External stores initialized")

	log.Printf("Disposable-domain list loaded (%d domains, lookup-only)", disposable.Count())

	// Assemble the HTTP application
	server := api.NewServer(cfg, stores)
	log.Println("Routes registered: /, /health, /health/ready, /health/live, " +
		cfg.API.Prefix() + "/{validate,batch,disposable}")

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Println("Server is ready")

	<-done
	log.Println("Shutting down...")

	// Cancel background contexts, then drain in-flight requests within the
	// configured grace period. If the deadline passes, force-exit non-zero.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		stores.Close()
		log.Printf("Graceful shutdown did not complete in %s: %v — forcing exit", cfg.Server.ShutdownTimeout(), err)
		os.Exit(1)
	}

	stores.Close()
	log.Println("Server stopped")
}
