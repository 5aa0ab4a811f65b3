package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"vasp-registry/config"
	"vasp-registry/models"
	"vasp-registry/providers"
	"vasp-registry/providers/localdir"
	"vasp-registry/providers/s3bucket"
	"vasp-registry/services"
	"vasp-registry/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	newPotentialsCounter prometheus.Counter
	failedImportsCounter prometheus.Counter
)

func init() {
	newPotentialsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "new_potentials_added_total",
			Help: "Total number of new VASP potentials added to the database.",
		},
	)
	failedImportsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "potcar_imports_failed_total",
			Help: "Total number of POTCAR uploads rejected by the parser.",
		},
	)
	prometheus.MustRegister(newPotentialsCounter, failedImportsCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := storage.OpenDatabase(cfg)
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to database.", zap.String("driver", cfg.DBDriver))

	logging.Info("Running database auto-migration...")
	if err := storage.Migrate(db); err != nil {
		logging.Fatal("Auto-migration failed", zap.Error(err))
	}

	// Seeding
	if err := services.SeedElements(db, logging); err != nil {
		logging.Fatal("Element seeding failed", zap.Error(err))
	}

	var s3Client storage.ObjectStore
	if cfg.S3Enabled() {
		client, err := storage.NewS3Client(context.Background(), cfg)
		if err != nil {
			logging.Fatal("S3 client creation failed", zap.Error(err))
		}
		s3Client = client
	}

	// Setup Providers
	var enabledProviders []providers.Provider
	for _, name := range cfg.Providers() {
		switch name {
		case "localdir":
			enabledProviders = append(enabledProviders, localdir.NewFetcher(cfg, logging))
		case "s3":
			if s3Client == nil {
				logging.Warn("Provider s3 enabled but S3_BUCKET is not set, skipping")
				continue
			}
			enabledProviders = append(enabledProviders, s3bucket.NewFetcher(cfg, s3Client, logging))
		default:
			logging.Warn("Unknown provider in config", zap.String("provider_name", name))
		}
	}
	logging.Info("Active providers loaded", zap.Strings("providers", cfg.Providers()))

	// Setup Services
	elements := services.NewElementDirectory(db, logging)
	potentials := services.NewPotentialService(db, elements, logging)
	hubbards := services.NewHubbardRegistry(db, elements, logging)
	importService := services.NewImportService(cfg, potentials, s3Client, logging, enabledProviders)

	router := setupRouter(cfg, elements, potentials, hubbards, importService, logging)

	// Setup Cron
	if len(enabledProviders) > 0 {
		cronScheduler := cron.New()
		if _, err := cronScheduler.AddFunc(cfg.CronSchedule, func() {
			logging.Info("Running scheduled import job...")
			count, err := importService.RunAllProviders(context.Background())
			if err != nil {
				logging.Error("Cron job failed", zap.Error(err))
			} else {
				logging.Info("Cron job completed", zap.Int("new_potentials", count))
				newPotentialsCounter.Add(float64(count))
			}
		}); err != nil {
			logging.Fatal("Invalid CRON_SCHEDULE", zap.String("schedule", cfg.CronSchedule), zap.Error(err))
		}
		cronScheduler.Start()
	}

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func setupRouter(cfg *config.Config, elements *services.ElementDirectory, potentials *services.PotentialService,
	hubbards *services.HubbardRegistry, importService *services.ImportService, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupElementRoutes(router, elements, log)
	setupPotentialRoutes(router, potentials, log)
	setupHubbardRoutes(router, hubbards, log)
	setupSourceRoutes(router, importService)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func setupElementRoutes(router *gin.Engine, elements *services.ElementDirectory, log *zap.Logger) {
	router.GET("/elements", func(c *gin.Context) {
		all, err := elements.All(c.Request.Context())
		if err != nil {
			log.Error("Database query for elements failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, all)
	})
}

func setupPotentialRoutes(router *gin.Engine, potentials *services.PotentialService, log *zap.Logger) {
	rg := router.Group("/potentials")

	rg.GET("", func(c *gin.Context) {
		var filter services.PotentialFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
			return
		}
		list, err := potentials.List(c.Request.Context(), filter)
		if err != nil {
			log.Error("Database query for potentials failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	// lookup ist für GET /:id und GET /:id/potcar gleich
	lookup := func(c *gin.Context) (*models.Potential, bool) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return nil, false
		}
		pot, err := potentials.Get(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "potential not found"})
				return nil, false
			}
			log.Error("DB error fetching potential", zap.Uint64("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return nil, false
		}
		return pot, true
	}

	rg.GET("/:id", func(c *gin.Context) {
		if pot, ok := lookup(c); ok {
			c.JSON(http.StatusOK, gin.H{"potential": pot, "label": pot.String()})
		}
	})

	rg.GET("/:id/potcar", func(c *gin.Context) {
		if pot, ok := lookup(c); ok {
			c.String(http.StatusOK, pot.Potcar)
		}
	})

	rg.POST("/import", func(c *gin.Context) {
		type ImportRequest struct {
			Potcar  string `json:"potcar" binding:"required"`
			Release string `json:"release"`
			Source  string `json:"source"`
		}
		var req ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Release == "" {
			req.Release = models.UnknownRelease
		}
		if req.Source == "" {
			req.Source = "http"
		}

		res, err := potentials.Import(c.Request.Context(), providers.PotcarFile{Source: req.Source, Content: req.Potcar, Release: req.Release})
		if err != nil {
			var potErr *models.PotentialError
			var parseErr *services.ParseError
			switch {
			case errors.As(err, &potErr):
				failedImportsCounter.Inc()
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "symbol": potErr.Symbol})
			case errors.As(err, &parseErr):
				failedImportsCounter.Inc()
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				log.Error("POTCAR import failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			}
			return
		}

		newPotentialsCounter.Add(float64(res.Created))
		labels := make([]string, 0, len(res.Potentials))
		for _, p := range res.Potentials {
			labels = append(labels, p.String())
		}
		c.JSON(http.StatusOK, gin.H{"created": res.Created, "potentials": res.Potentials, "labels": labels})
	})
}

func setupHubbardRoutes(router *gin.Engine, hubbards *services.HubbardRegistry, log *zap.Logger) {
	rg := router.Group("/hubbards")

	rg.GET("", func(c *gin.Context) {
		list, err := hubbards.List(c.Request.Context())
		if err != nil {
			log.Error("Database query for hubbards failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	// Get-or-create: gleiche Parameter liefern denselben Datensatz
	rg.POST("", func(c *gin.Context) {
		type HubbardRequest struct {
			Element        string   `json:"element" binding:"required"`
			Ligand         *string  `json:"ligand"`
			Convention     string   `json:"convention"`
			OxidationState *float64 `json:"oxidation_state"`
			U              float64  `json:"u"`
			L              *int     `json:"l"`
		}
		var req HubbardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		opts := []services.HubbardOption{services.WithConvention(req.Convention), services.WithU(req.U)}
		if req.Ligand != nil {
			opts = append(opts, services.WithLigand(*req.Ligand))
		}
		if req.OxidationState != nil {
			opts = append(opts, services.WithOxidationState(*req.OxidationState))
		}
		if req.L != nil {
			opts = append(opts, services.WithL(*req.L))
		}

		hub, err := hubbards.Get(c.Request.Context(), req.Element, opts...)
		if err != nil {
			var hubErr *services.HubbardError
			if errors.As(err, &hubErr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			log.Error("Hubbard get-or-create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"hubbard": hub,
			"label":   hub.String(),
			"key":     hub.Key(),
			"active":  models.IsActive(hub),
		})
	})

	rg.GET("/table", func(c *gin.Context) {
		table, err := hubbards.Table(c.Request.Context())
		if err != nil {
			log.Error("Building hubbard table failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, table)
	})
}

func setupSourceRoutes(router *gin.Engine, importService *services.ImportService) {
	router.POST("/sources/scan", func(c *gin.Context) {
		go func() {
			count, err := importService.RunAllProviders(context.Background())
			if err != nil {
				importService.Logger.Error("Async import failed", zap.Error(err))
			} else {
				newPotentialsCounter.Add(float64(count))
				importService.Logger.Info("Async import completed", zap.Int("new_potentials", count))
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"message": "Import from all sources triggered."})
	})
}
