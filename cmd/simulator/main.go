package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/mfreeman451/wardwatch/pkg/lifecycle"
	"github.com/mfreeman451/wardwatch/pkg/simulator"
)

// httpService adapts an http.Server to the lifecycle.Service interface.
type httpService struct {
	server *http.Server
}

func (s *httpService) Start(_ context.Context) error {
	log.Printf("Simulated hospital service listening on %s", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *httpService) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func main() {
	listenAddr := flag.String("listen", ":8000", "Listen address")
	flag.Parse()

	sim := simulator.New()

	svc := &httpService{
		server: &http.Server{
			Addr:              *listenAddr,
			Handler:           sim,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	if err := lifecycle.Run(context.Background(), &lifecycle.Options{
		ServiceName: "wardwatch-simulator",
		Service:     svc,
	}); err != nil {
		log.Fatalf("Simulator exited with error: %v", err)
	}
}
