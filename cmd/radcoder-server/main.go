package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/radcoder/radcoder/internal/config"
	"github.com/radcoder/radcoder/internal/domain/codesystem"
	"github.com/radcoder/radcoder/internal/domain/mapping"
	"github.com/radcoder/radcoder/internal/domain/terminology"
	"github.com/radcoder/radcoder/internal/platform/auth"
	"github.com/radcoder/radcoder/internal/platform/db"
	"github.com/radcoder/radcoder/internal/platform/llm"
	"github.com/radcoder/radcoder/internal/platform/middleware"
	"github.com/radcoder/radcoder/internal/platform/tabular"
	"github.com/radcoder/radcoder/internal/platform/telemetry"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "radcoder-server",
		Short: "Radiology study to LOINC / ICD-10-PCS mapping server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(mapCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the mapping API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func mapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <input.csv>",
		Short: "Map a CSV of study descriptions and write the coded output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return runMap(args[0], out)
		},
	}
	cmd.Flags().String("out", "", "Output CSV path (default <input>_mapped.csv)")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations for the catalog tables",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	// migrate seed
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the catalog tables with the builtin LOINC, ICD-10-PCS and vocabulary data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			catalogRepo := codesystem.NewCatalogRepoPG(pool)
			n, err := catalogRepo.SeedRows(ctx, codesystem.SystemLOINC, codesystem.BuiltinLOINC())
			if err != nil {
				return fmt.Errorf("seeding LOINC catalog: %w", err)
			}
			fmt.Printf("Seeded %d LOINC row(s).\n", n)

			n, err = catalogRepo.SeedRows(ctx, codesystem.SystemICD10PCS, codesystem.BuiltinICD10PCS())
			if err != nil {
				return fmt.Errorf("seeding ICD-10-PCS catalog: %w", err)
			}
			fmt.Printf("Seeded %d ICD-10-PCS row(s).\n", n)

			termRepo := terminology.NewRepoPG(pool)
			n, err = termRepo.SeedEntries(ctx, terminology.Builtin())
			if err != nil {
				return fmt.Errorf("seeding vocabulary entries: %w", err)
			}
			fmt.Printf("Seeded %d vocabulary entrie(s).\n", n)

			n, err = termRepo.SeedBlocks(ctx, terminology.BuiltinBlocks())
			if err != nil {
				return fmt.Errorf("seeding vocabulary blocks: %w", err)
			}
			fmt.Printf("Seeded %d vocabulary block(s).\n", n)
			return nil
		},
	}
	cmd.AddCommand(seedCmd)

	return cmd
}

// catalog bundles everything loaded from the configured catalog source.
// pool is non-nil only for the postgres source, where it stays open for
// the DB health endpoint and pool gauges; serving never queries it.
type catalog struct {
	loinc *codesystem.Database
	pcs   *codesystem.Database
	table *terminology.Table
	pool  *pgxpool.Pool
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog, error) {
	switch cfg.CatalogSource {
	case "builtin":
		table, err := terminology.LoadTable(cfg.TerminologyFile)
		if err != nil {
			return nil, err
		}
		return buildCatalog(codesystem.BuiltinLOINC(), codesystem.BuiltinICD10PCS(), table, nil)

	case "csv":
		loincRows, err := codesystem.LoadCSV(cfg.LOINCTableFile)
		if err != nil {
			return nil, fmt.Errorf("loading LOINC table: %w", err)
		}
		pcsRows, err := codesystem.LoadCSV(cfg.ICD10PCSTableFile)
		if err != nil {
			return nil, fmt.Errorf("loading ICD-10-PCS table: %w", err)
		}
		table, err := terminology.LoadTable(cfg.TerminologyFile)
		if err != nil {
			return nil, err
		}
		return buildCatalog(loincRows, pcsRows, table, nil)

	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		catalogRepo := codesystem.NewCatalogRepoPG(pool)
		loincRows, err := catalogRepo.LoadRows(ctx, codesystem.SystemLOINC)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("loading LOINC catalog: %w", err)
		}
		pcsRows, err := catalogRepo.LoadRows(ctx, codesystem.SystemICD10PCS)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("loading ICD-10-PCS catalog: %w", err)
		}
		termRepo := terminology.NewRepoPG(pool)
		entries, err := termRepo.LoadEntries(ctx)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("loading vocabulary entries: %w", err)
		}
		blocks, err := termRepo.LoadBlocks(ctx)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("loading vocabulary blocks: %w", err)
		}
		table, err := terminology.NewTable(entries, blocks)
		if err != nil {
			pool.Close()
			return nil, err
		}
		cat, err := buildCatalog(loincRows, pcsRows, table, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return cat, nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

func buildCatalog(loincRows, pcsRows []codesystem.Row, table *terminology.Table, pool *pgxpool.Pool) (*catalog, error) {
	loincDB, err := codesystem.NewDatabase(codesystem.SystemLOINC, loincRows)
	if err != nil {
		return nil, fmt.Errorf("building LOINC database: %w", err)
	}
	pcsDB, err := codesystem.NewDatabase(codesystem.SystemICD10PCS, pcsRows)
	if err != nil {
		return nil, fmt.Errorf("building ICD-10-PCS database: %w", err)
	}
	return &catalog{loinc: loincDB, pcs: pcsDB, table: table, pool: pool}, nil
}

// buildClassifier wires the LLM client into the engine when enabled and
// returns the status the API reports. engine.SetClassifier validates
// the configured confidence threshold.
func buildClassifier(cfg *config.Config, engine *mapping.Engine, logger zerolog.Logger) (mapping.ClassifierStatus, error) {
	if !cfg.LLMEnabled {
		return mapping.ClassifierStatus{Enabled: false}, nil
	}

	client, err := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey,
		llm.WithModel(cfg.LLMModel),
		llm.WithTimeout(cfg.LLMTimeout),
		llm.WithLogger(logger),
	)
	if err != nil {
		return mapping.ClassifierStatus{}, fmt.Errorf("building LLM client: %w", err)
	}

	classifier := mapping.ClassifierFunc(func(ctx context.Context, descriptionEN, descriptionZH string) (mapping.Candidate, error) {
		cls, err := client.Classify(ctx, descriptionEN, descriptionZH)
		return mapping.Candidate(cls), err
	})
	if err := engine.SetClassifier(classifier, cfg.LLMConfidenceThreshold); err != nil {
		return mapping.ClassifierStatus{}, err
	}

	return mapping.ClassifierStatus{
		Enabled:   true,
		Model:     client.Model(),
		BaseURL:   client.BaseURL(),
		Threshold: cfg.LLMConfidenceThreshold,
	}, nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Catalogs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load catalogs")
	}
	if cat.pool != nil {
		defer cat.pool.Close()
	}
	logger.Info().
		Str("source", cfg.CatalogSource).
		Int("loinc_records", cat.loinc.Len()).
		Int("icd10pcs_records", cat.pcs.Len()).
		Int("vocabulary_entries", cat.table.Len()).
		Msg("catalogs loaded")

	// Telemetry
	tp := telemetry.NewTelemetryProvider(telemetry.TelemetryConfig{
		ServiceName:    "radcoder-server",
		ServiceVersion: version,
		Environment:    cfg.Env,
	})
	tp.HealthMetrics().SetCatalogRecords("loinc", int64(cat.loinc.Len()))
	tp.HealthMetrics().SetCatalogRecords("icd10pcs", int64(cat.pcs.Len()))

	// Mapping engine + optional LLM classifier
	engine := mapping.NewEngine(cat.table, cat.loinc, cat.pcs)
	classifierStatus, err := buildClassifier(cfg, engine, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure classifier")
	}
	if classifierStatus.Enabled {
		logger.Info().
			Str("model", classifierStatus.Model).
			Str("threshold", classifierStatus.Threshold).
			Msg("LLM classifier enabled")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(tp.TracingMiddleware())
	e.Use(tp.MetricsMiddleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.ResolvedAuthMode() == "disabled" {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			SigningKey: []byte(cfg.AuthJWTSecret),
		}))
	}

	e.Use(middleware.SanitizeWithLogger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M", "20M"))
	e.Use(middleware.RequestTimeout(60 * time.Second))

	// Health and metrics
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	if cat.pool != nil {
		e.GET("/health/db", db.HealthHandler(cat.pool))
		db.StartStatsReporter(ctx, cat.pool, tp.HealthMetrics(), 15*time.Second)
	}
	e.GET("/metrics", tp.PrometheusHandler())

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Mapping endpoints
	mappingHandler := mapping.NewHandler(engine, classifierStatus)
	mappingHandler.SetMetrics(tp)
	mappingHandler.SetWorkers(cfg.Workers)
	mappingHandler.RegisterRoutes(apiV1)

	// Code search endpoints, cached: the catalogs are immutable for the
	// lifetime of the process.
	cacheStore := middleware.NewInMemoryCacheStore()
	cacheStore.StartCleanup(ctx, 5*time.Minute)
	codesHandler := codesystem.NewHandler(codesystem.NewService(cat.loinc, cat.pcs))
	codesHandler.RegisterRoutes(apiV1,
		middleware.ETagMiddleware(middleware.DefaultCacheConfig()),
		middleware.ResponseCacheMiddleware(cacheStore, 5*time.Minute),
	)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("telemetry shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// defaultOutputPath derives the output file name from the input:
// studies.csv becomes studies_mapped.csv.
func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, ".csv") + "_mapped.csv"
}

func runMap(inputPath, outputPath string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}
	if cat.pool != nil {
		defer cat.pool.Close()
	}

	engine := mapping.NewEngine(cat.table, cat.loinc, cat.pcs)
	classifierStatus, err := buildClassifier(cfg, engine, logger)
	if err != nil {
		return err
	}
	if classifierStatus.Enabled {
		logger.Info().Str("model", classifierStatus.Model).Msg("LLM classifier enabled")
	}

	table, err := tabular.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	studies, err := mapping.DecodeStudies(table)
	if err != nil {
		return err
	}
	logger.Info().Int("studies", len(studies)).Str("input", inputPath).Msg("mapping studies")

	batch, err := engine.MapBatch(ctx, studies, mapping.BatchOptions{
		Workers: cfg.Workers,
		Progress: func(done, total int) {
			if done%100 == 0 || done == total {
				logger.Info().Int("done", done).Int("total", total).Msg("progress")
			}
		},
	})
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}
	if err := tabular.WriteFile(outputPath, mapping.EncodeResults(batch.Results)); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	s := batch.Summary
	logger.Info().
		Str("job_id", batch.JobID).
		Int("studies", s.TotalStudies).
		Str("loinc_rate", s.LOINCRate).
		Str("icd10pcs_rate", s.ICD10PCSRate).
		Int("with_issues", s.WithIssues).
		Str("output", outputPath).
		Msg("mapping complete")
	return nil
}
