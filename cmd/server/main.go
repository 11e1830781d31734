package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lamsa-decor/backend/internal/config"
	"github.com/lamsa-decor/backend/internal/handler"
	"github.com/lamsa-decor/backend/internal/logging"
	"github.com/lamsa-decor/backend/internal/repository"
	"github.com/lamsa-decor/backend/internal/service"
	"github.com/lamsa-decor/backend/internal/storage"
	"github.com/lamsa-decor/backend/pkg/auth"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	store, err := newStorage(context.Background(), cfg.Storage)
	if err != nil {
		logging.Fatal("failed to set up storage", "error", err)
	}

	contactRepo := repository.NewPgContactRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	blogRepo := repository.NewPgBlogRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)
	contactService := service.NewContactService(contactRepo)
	projectService := service.NewProjectService(projectRepo, store)
	blogService := service.NewBlogService(blogRepo, store)
	authService := service.NewAuthService(adminRepo)

	sessionSecret := auth.SessionSecretBytes(cfg.SessionSecret)
	secureCookie := strings.HasPrefix(cfg.FrontendURL, "https://")

	h := handler.New(pool, cfg.FrontendURL)
	contentHandler := handler.NewContentHandler()
	contactHandler := handler.NewContactHandler(contactService)
	projectHandler := handler.NewProjectHandler(projectService, cfg.WhatsAppNumber)
	blogHandler := handler.NewBlogHandler(blogService)
	authHandler := handler.NewAuthHandler(authService, sessionSecret, secureCookie)
	loginLimiter := handler.NewLoginRateLimiter(cfg.LoginRatePerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/content", contentHandler.Content)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)

	// Public catalog (no auth)
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.HandleFunc("GET /api/projects/{id}/consultation-link", projectHandler.ConsultationLink)
	mux.HandleFunc("GET /api/blogs", blogHandler.List)
	mux.HandleFunc("GET /api/blogs/{id}", blogHandler.Get)

	// Admin session
	mux.Handle("POST /api/admin/login", loginLimiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /api/admin/logout", authHandler.Logout)

	// Admin routes (session cookie required)
	requireAdmin := auth.RequireAdmin(sessionSecret)
	mux.Handle("GET /api/admin/messages", requireAdmin(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("POST /api/admin/projects", requireAdmin(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("DELETE /api/admin/projects/{id}", requireAdmin(http.HandlerFunc(projectHandler.Delete)))
	mux.Handle("POST /api/admin/blogs", requireAdmin(http.HandlerFunc(blogHandler.Create)))
	mux.Handle("DELETE /api/admin/blogs/{id}", requireAdmin(http.HandlerFunc(blogHandler.Delete)))

	// Serve uploaded images directly when using the local backend.
	if cfg.Storage.Backend == "local" {
		prefix := strings.TrimSuffix(cfg.Storage.LocalURLPrefix, "/") + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Storage.LocalDir))))
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "storage", cfg.Storage.Backend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func newStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, error) {
	if cfg.Backend == "s3" {
		return storage.NewMinioStorage(ctx, storage.MinioConfig{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			UseSSL:          cfg.S3UseSSL,
			Bucket:          cfg.S3Bucket,
			PublicBaseURL:   cfg.PublicBaseURL,
		})
	}
	return storage.NewLocalStorage(cfg.LocalDir, cfg.LocalURLPrefix), nil
}
