package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/config"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/database"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/handlers"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Blinkrloan dashboard backend starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	logger.L.Info("Initializing snapshot cache...")
	snapshotCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)

	logger.L.Info("Initializing services and handlers...")
	snapshotClient := services.NewHTTPSnapshotClient(config.Cfg.FetchTimeout)
	snapshotService := services.NewSnapshotService(
		snapshotClient,
		config.Cfg.PortfolioAPIURL,
		config.Cfg.CollectionAPIURL,
		config.Cfg.SnapshotCacheTTL,
		snapshotCache,
	)
	targetService := services.NewTargetService(database.DB)

	dashboardHandler := handlers.NewDashboardHandler(snapshotService)
	detailHandler := handlers.NewDetailHandler(snapshotService)
	fraudHandler := handlers.NewFraudHandler(snapshotService)
	targetHandler := handlers.NewTargetHandler(targetService, snapshotService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("GET /api/kpi-data", dashboardHandler.HandleGetKPIData)
	apiRouter.HandleFunc("GET /api/dpd-buckets", dashboardHandler.HandleGetDPDBuckets)
	apiRouter.HandleFunc("GET /api/state-repayment", dashboardHandler.HandleGetStateRepayment)
	apiRouter.HandleFunc("GET /api/time-series", dashboardHandler.HandleGetTimeSeries)
	apiRouter.HandleFunc("GET /api/city-collected", dashboardHandler.HandleGetCityCollected)
	apiRouter.HandleFunc("GET /api/city-uncollected", dashboardHandler.HandleGetCityUncollected)
	apiRouter.HandleFunc("GET /api/amount-bands", dashboardHandler.HandleGetAmountBands)
	apiRouter.HandleFunc("GET /api/collection-history", dashboardHandler.HandleGetCollectionHistory)
	apiRouter.HandleFunc("GET /api/cities-by-state", dashboardHandler.HandleGetCitiesByState)
	apiRouter.HandleFunc("GET /api/filter-options", dashboardHandler.HandleGetFilterOptions)

	apiRouter.HandleFunc("GET /api/total-applications-details", detailHandler.HandleGetTotalApplicationsDetails)
	apiRouter.HandleFunc("GET /api/dpd-bucket-details", detailHandler.HandleGetDPDBucketDetails)

	apiRouter.HandleFunc("GET /api/fraud/kpi-data", fraudHandler.HandleGetFraudKPIData)
	apiRouter.HandleFunc("GET /api/fraud/dpd-buckets", fraudHandler.HandleGetFraudDPDBuckets)
	apiRouter.HandleFunc("GET /api/fraud/state-repayment", fraudHandler.HandleGetFraudStateRepayment)
	apiRouter.HandleFunc("GET /api/fraud/time-series", fraudHandler.HandleGetFraudTimeSeries)
	apiRouter.HandleFunc("GET /api/fraud/city-collected", fraudHandler.HandleGetFraudCityCollected)
	apiRouter.HandleFunc("GET /api/fraud/city-uncollected", fraudHandler.HandleGetFraudCityUncollected)

	apiRouter.HandleFunc("GET /api/monthly-target", targetHandler.HandleGetMonthlyTarget)
	apiRouter.HandleFunc("POST /api/monthly-target", targetHandler.HandleSetMonthlyTarget)
	apiRouter.HandleFunc("GET /api/monthly-performance", targetHandler.HandleGetMonthlyPerformance)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Blinkrloan Dashboard backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
