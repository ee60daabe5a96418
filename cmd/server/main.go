package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edugraph/internal/graph"
	"edugraph/internal/seed"
	"edugraph/pkg/config"
	"edugraph/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...")

	ctx := context.Background()
	driver, err := graph.NewDriver(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	defer driver.Close(context.Background())

	repo := graph.NewRepository(driver)
	loader := seed.NewLoader(repo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(repo, loader, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// newRouter wires the REST surface over the same operations the console
// menu exposes.
func newRouter(repo *graph.Repository, loader *seed.Loader, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/students", func(c *gin.Context) {
			students, err := repo.ListStudents(c.Request.Context())
			if err != nil {
				log.Error("Failed to list students", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list students"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"students": students})
		})

		api.GET("/students/:email/progress", func(c *gin.Context) {
			email := c.Param("email")
			summary, err := repo.StudentProgress(c.Request.Context(), email)
			if err != nil {
				var notFound graph.ErrStudentNotFound
				if errors.As(err, &notFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
					return
				}
				log.Error("Failed to fetch progress", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
				return
			}
			c.JSON(http.StatusOK, summary)
		})

		api.GET("/students/:email/recommendations", func(c *gin.Context) {
			email := c.Param("email")
			recs, err := repo.Recommendations(c.Request.Context(), email)
			if err != nil {
				log.Error("Failed to fetch recommendations", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"email": email, "recommendations": recs})
		})

		api.GET("/students/:email/slow-activities", func(c *gin.Context) {
			email := c.Param("email")
			rows, err := repo.SlowActivities(c.Request.Context(), email)
			if err != nil {
				log.Error("Failed to fetch slow activities", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slow activities"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"email": email, "slow_activities": rows})
		})

		api.GET("/cohorts", func(c *gin.Context) {
			cohorts, err := repo.ListCohorts(c.Request.Context())
			if err != nil {
				log.Error("Failed to list cohorts", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cohorts"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"cohorts": cohorts})
		})

		api.GET("/cohorts/:cohort/stats", func(c *gin.Context) {
			summary, err := repo.CohortStats(c.Request.Context(), c.Param("cohort"))
			if err != nil {
				var notFound graph.ErrCohortNotFound
				if errors.As(err, &notFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Cohort not found"})
					return
				}
				log.Error("Failed to fetch cohort stats", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cohort stats"})
				return
			}
			c.JSON(http.StatusOK, summary)
		})

		api.GET("/stats", func(c *gin.Context) {
			stats, err := repo.GraphStats(c.Request.Context())
			if err != nil {
				log.Error("Failed to fetch stats", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
				return
			}
			c.JSON(http.StatusOK, stats)
		})

		api.POST("/seed", func(c *gin.Context) {
			report := loader.Load(c.Request.Context())
			status := http.StatusOK
			if report.Failed() {
				status = http.StatusMultiStatus
			}
			c.JSON(status, gin.H{
				"failed": report.Failed(),
				"groups": report.Groups,
			})
		})
	}

	return router
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
