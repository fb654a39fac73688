// @title         GitInsight API
// @version       0.1.0
// @description   GitHub profile browsing with AI README summaries and a candidate shortlist

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"gitinsight/internal/platform/config"
	"gitinsight/internal/platform/logger"
	phttp "gitinsight/internal/platform/net/http"
	"gitinsight/internal/platform/store"

	"gitinsight/internal/adapters/gemini"
	"gitinsight/internal/adapters/github"
	"gitinsight/internal/services/api"
	candidatesrepo "gitinsight/internal/services/api/candidates/repo"
)

func main() {
	// local dev convenience, real deployments set the environment directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*
	ghCfg := root.Prefix("GITHUB_")
	genCfg := root.Prefix("GEMINI_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx := context.Background()

	// open the platform store (postgres)
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "gitinsight-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := candidatesrepo.EnsureSchema(ctx, st.PG); err != nil {
		l.Panic().Err(err).Msg("candidates schema setup failed")
	}

	// upstream clients
	ghc := github.NewClient(github.Options{
		BaseURL:   ghCfg.MayString("BASE_URL", ""),
		Token:     ghCfg.MayString("TOKEN", ""),
		UserAgent: ghCfg.MayString("UA", "gitinsight"),
		Timeout:   ghCfg.MayDuration("TIMEOUT", 10*time.Second),
		PageSize:  ghCfg.MayInt("PAGE_SIZE", 20),
	})

	gem, err := gemini.NewClient(ctx, gemini.Options{
		APIKey: genCfg.MustString("API_KEY"),
		Model:  genCfg.MayString("MODEL", ""),
	})
	if err != nil {
		l.Panic().Err(err).Msg("gemini client setup failed")
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Profiles:       ghc,
			Summarizer:     gem,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
