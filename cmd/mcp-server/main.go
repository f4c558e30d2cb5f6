package main

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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xandys/eccbc-mcp/internal/config"
	"github.com/xandys/eccbc-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "ECCBC stock management MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("backend-url", "", "ECCBC backend base URL")
	root.PersistentFlags().Duration("http-timeout", 30*time.Second, "Backend HTTP timeout")
	root.PersistentFlags().String("log-level", "", "Log level (info, debug)")
	root.PersistentFlags().String("transport", "", "Transport (stdio, http)")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")

	config.Init(root)
	_ = viper.BindPFlag(config.KeyBackendURL, root.PersistentFlags().Lookup("backend-url"))
	_ = viper.BindPFlag(config.KeyHTTPTimeout, root.PersistentFlags().Lookup("http-timeout"))
	_ = viper.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyTransport, root.PersistentFlags().Lookup("transport"))
	_ = viper.BindPFlag(config.KeyHost, root.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag(config.KeyPort, root.PersistentFlags().Lookup("port"))

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	switch config.Transport() {
	case "stdio":
		return srv.ServeStdio()
	case "http":
		return serveHTTP(srv)
	default:
		return fmt.Errorf("unknown transport %q", config.Transport())
	}
}

func serveHTTP(srv *mcp.Server) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
