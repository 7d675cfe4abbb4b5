package app

import (
	"fmt"
	"net/http"
	"orderping/internal/app/deps"
	"orderping/internal/app/services"
	runtick "orderping/internal/http/handlers/run_tick"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reconciliationRouter := chi.NewRouter()
	reconciliationRouter.Method(http.MethodPost, "/ticks", runtick.New(s.ReconcileRemindersByTrigger))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Route("/api", func(api chi.Router) {
		api.Mount("/reconciliation", reconciliationRouter)
	})

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
