package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mfreeman451/wardwatch/pkg/config"
	"github.com/mfreeman451/wardwatch/pkg/feed"
	"github.com/mfreeman451/wardwatch/pkg/fetch"
	"github.com/mfreeman451/wardwatch/pkg/geo"
	"github.com/mfreeman451/wardwatch/pkg/lifecycle"
	"github.com/mfreeman451/wardwatch/pkg/realtime"
	"github.com/mfreeman451/wardwatch/pkg/scenario"
	"github.com/mfreeman451/wardwatch/pkg/view"
	"github.com/mfreeman451/wardwatch/pkg/workflow"
)

func main() {
	configPath := flag.String("config", "", "Path to dashboard config file")
	flag.Parse()

	var cfg config.Config

	if *configPath != "" {
		if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	} else if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid default config: %v", err)
	}

	client := fetch.New(cfg.APIBaseURL, fetch.WithLocator(geo.NewStaticProvider()))
	channel := realtime.NewChannel(cfg.WSURL)
	store := scenario.NewStore()
	generator := feed.NewGenerator(time.Duration(cfg.FeedInterval), nil)
	wf := workflow.New(client)

	manager := view.NewManager(store, generator, wf, client, channel,
		time.Duration(cfg.PollInterval))

	if err := lifecycle.Run(context.Background(), &lifecycle.Options{
		ServiceName: "wardwatch-dashboard",
		Service:     manager,
	}); err != nil {
		log.Fatalf("Dashboard exited with error: %v", err)
	}
}
