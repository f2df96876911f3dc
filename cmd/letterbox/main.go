package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"letterbox/infrastructure/grpc/server"
	"letterbox/internal"
	pb "letterbox/proto/exchange"
	pbstorage "letterbox/proto/storage"
	"letterbox/repositories"
	"letterbox/repositories/search"
	"letterbox/runtime"
	"letterbox/runtime/workers"
	"letterbox/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	grpc2 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Letterbox terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern keeps every defer (database close, index close) on the path out,
// which os.Exit in main would skip.
func run() (int, error) {
	// 1. Configuration & Logger
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		debugPort := config.DebugPort
		if debugPort == 0 {
			debugPort = 8081
		}
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", debugPort, endpoint))
		internal.StartDebugServer(db, debugPort, endpoint, LetterMapper, nil)
	}

	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Repositories, services and dispatcher
	letterRepository := repositories.NewLetterRepository(db, logger)
	participantRepository := repositories.NewParticipantRepository(db)
	letterIndex := search.NewLetterIndex(blugeWriter, logger, config.SearchResultLimit)
	resolver := services.NewRecipientResolver(participantRepository, logger)
	dispatcher := runtime.NewDispatcher(logger, letterRepository, config.BufferSize)
	letterService := services.NewLetterService(
		letterRepository, participantRepository, resolver, letterIndex, dispatcher, logger)

	sup := workers.NewSupervisor(logger)
	sup.Add(dispatcher)

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Error (gRPC & supervisor)
	errChan := make(chan error, 2)

	// 5. Start the dispatcher under supervision
	go func() {
		logger.Info("Starting dispatcher...")
		sup.Run(ctx)
	}()

	// 6. gRPC Server Setup
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc2.UnaryLoggingInterceptor(logger),
		))
	exchangeServer := server.NewExchangeServer(
		logger, letterService, dispatcher, config.ConnectionBufferSize, config.SinkTimeout)
	pb.RegisterExchangeServiceServer(s, exchangeServer)

	// Use an error channel to capture Serve() issues asynchronously.
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("📡 gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// We let active gRPC streams finish and the dispatcher drain its channel.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// LetterMapper decodes primary letter values for the inspector; index
// keys fall through to the default layout decoding.
func LetterMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var p pbstorage.Letter
	if err := proto.Unmarshal(val, &p); err != nil {
		return row
	}

	row.Type = p.Category
	row.EntityID = p.Id
	if len(row.EntityID) > 8 {
		row.EntityID = row.EntityID[:8]
	}
	row.Namespace = p.RecipientEmail
	row.Timestamp = time.Unix(0, p.SentAt).Format("15:04:05")
	row.Detail = p.Subject
	if p.Read {
		row.Detail += " (read)"
	}
	return row
}
