// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wanderplan/internal/ai"
	"wanderplan/internal/config"
	httptransport "wanderplan/internal/http"
	"wanderplan/internal/http/handlers"
	"wanderplan/internal/infra"
	"wanderplan/internal/maps"
	"wanderplan/internal/modules/trip"
	"wanderplan/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatal(err)
	}
	defer provider.Close()

	executor := ai.NewExecutor(ai.RetryConfig{
		MaxRetries:   cfg.AI.MaxRetries,
		InitialDelay: cfg.AI.InitialDelay,
	})
	planner := ai.NewPlanner(provider, executor, ai.NewRedisCache(redisClient))

	userSvc := user.NewService(user.NewStore(dbPool))
	tripSvc := trip.NewService(trip.NewStore(dbPool), userSvc)

	var citySearcher handlers.CitySearcher
	if cfg.Maps.APIKey != "" {
		citySvc, err := maps.NewCityService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		citySearcher = citySvc
	} else {
		log.Print("MAPS_API_KEY not set; city autocomplete disabled")
	}

	router := httptransport.NewRouter(planner, userSvc, tripSvc, citySearcher)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
