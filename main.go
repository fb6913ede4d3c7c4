// Taskhub is a task-management backend: users register, confirm their
// account, authenticate, and manage personal task lists and tasks. This file
// wires configuration, the database pool, services and handlers together,
// sets up the HTTP router and middleware, and runs the server with graceful
// shutdown.
//
// @title Taskhub API
// @version 1.0
// @description Task-management backend: users, task lists, and tasks with token-based authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/taskhub-go/apperror"
	"github.com/user/taskhub-go/auth"
	"github.com/user/taskhub-go/background"
	"github.com/user/taskhub-go/config"
	"github.com/user/taskhub-go/db"
	_ "github.com/user/taskhub-go/docs" // generated Swagger docs
	"github.com/user/taskhub-go/tasklists"
	"github.com/user/taskhub-go/tasks"
	"github.com/user/taskhub-go/users"
)

func main() {
	// .env is a development convenience; in production the variables are set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	// A missing JWT secret is a fatal configuration error, reported here
	// together with every other config problem.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}

	// Background sweeper for accounts that never confirmed.
	sweeperStopChan := make(chan struct{})
	var sweeperWg sync.WaitGroup
	background.StartUnconfirmedSweeper(pool, cfg.Auth.ConfirmationTTL, sweeperStopChan, &sweeperWg)

	// Wire stores, services and handlers. Dependencies are injected
	// explicitly; there is no ambient database handle.
	userStore := auth.NewPostgresUserStore(pool)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret)
	gate := auth.NewGate(issuer, userStore)

	authService := auth.NewAuthService(userStore, issuer, cfg.Auth.TokenValidity)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewService(users.NewPostgresStore(pool))
	userHandlers := users.NewHandlers(userService)

	listService := tasklists.NewService(tasklists.NewPostgresStore(pool))
	listHandlers := tasklists.NewHandlers(listService)

	taskService := tasks.NewService(tasks.NewPostgresStore(pool))
	taskHandlers := tasks.NewHandlers(taskService)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware registered before routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic-to-apperror fallback so even a recovered panic answers with the
	// standard error shape.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// User routes. Registration, confirmation, authentication and the user
	// listing are open; the profile requires a credential.
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/confirm/{token}", authHandlers.HandleConfirm())
		r.Post("/auth", authHandlers.HandleAuthenticate())
		r.Get("/", userHandlers.HandleList())

		r.Group(func(r chi.Router) {
			r.Use(gate.Middleware())
			r.Get("/me", userHandlers.HandleProfile())
		})
	})

	// Task list routes. The single-resource read is open; everything else
	// passes through the access gate.
	r.Route("/tasks-lists", func(r chi.Router) {
		r.Get("/{listID}", listHandlers.HandleGet())

		r.Group(func(r chi.Router) {
			r.Use(gate.Middleware())
			r.Post("/", listHandlers.HandleCreate())
			r.Get("/", listHandlers.HandleList())
			r.Patch("/{listID}", listHandlers.HandleUpdate())
			r.Delete("/{listID}", listHandlers.HandleDelete())
			r.Post("/{listID}/complete-all", listHandlers.HandleCompleteAll())
		})
	})

	// Task routes, all protected.
	r.Route("/tasks", func(r chi.Router) {
		r.Use(gate.Middleware())
		r.Post("/", taskHandlers.HandleCreate())
		r.Get("/{taskID}", taskHandlers.HandleGet())
		r.Patch("/{taskID}", taskHandlers.HandleUpdate())
		r.Patch("/{taskID}/done", taskHandlers.HandleMarkDone())
		r.Delete("/{taskID}", taskHandlers.HandleDelete())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	close(sweeperStopChan)
	sweeperWg.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
