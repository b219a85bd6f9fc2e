// README: Entry point; loads config and models, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/modules/ensemble"
	"farecast/internal/modules/predict"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Model loading happens once, before the server accepts traffic. A load
	// failure degrades the service instead of killing the process so health
	// checks and static content still work.
	models, status := ensemble.Load(cfg.Models.Dir)
	if status.ModelsLoaded {
		log.Printf("models loaded from %s", cfg.Models.Dir)
	} else {
		log.Printf("models unavailable; predictions will fail fast")
	}

	var store *predict.Store
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		store = predict.NewStore(pool)
	}

	var cache *predict.Cache
	if cfg.Cache.Addr != "" {
		cache = predict.NewCache(infra.NewRedis(cfg.Cache.Addr), time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}

	svc := predict.NewService(models, status, store, cache)

	router := httptransport.NewRouter(httptransport.ServerDeps{
		Predict:   svc,
		StaticDir: cfg.Static.Dir,
	})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
