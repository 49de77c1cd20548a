// Package lifecycle runs services with signal-driven shutdown.
package lifecycle

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	// ShutdownTimeout bounds how long Stop may take once a shutdown
	// signal arrives.
	ShutdownTimeout = 10 * time.Second
)

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// Options holds configuration for running a service.
type Options struct {
	ServiceName string
	Service     Service
}

// Run starts a service and blocks until it fails, the context is canceled
// or a termination signal arrives, then stops it within ShutdownTimeout.
func Run(ctx context.Context, opts *Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Printf("*** Starting service %s", opts.ServiceName)

	errChan := make(chan error, 1)

	go func() {
		if err := opts.Service.Start(ctx); err != nil && ctx.Err() == nil {
			select {
			case errChan <- err:
			default:
				log.Printf("Service error: %v", err)
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		return fmt.Errorf("service %s failed: %w", opts.ServiceName, err)
	case <-ctx.Done():
	}

	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer stopCancel()

	if err := opts.Service.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to stop service %s: %w", opts.ServiceName, err)
	}

	log.Printf("Service %s stopped", opts.ServiceName)

	return nil
}
