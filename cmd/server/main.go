package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"sqlprep/config"
	"sqlprep/database"
	"sqlprep/pkg/ai"
	"sqlprep/pkg/logger"
	"sqlprep/pkg/parser"
	"sqlprep/router"

	authCtrlImp "sqlprep/pkg/auth/controllerImp"
	healthCtrlImp "sqlprep/pkg/health/controllerImp"
	planCtrlImp "sqlprep/pkg/plan/controllerImp"
	planRepoImp "sqlprep/pkg/plan/repositoryImp"
	planSvc "sqlprep/pkg/plan/serviceImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		zl.Fatal("open sqlite", "path", cfg.DBPath, "err", err)
	}

	// 3) Generative model (mock when no key configured)
	var llm ai.Client
	if cfg.GeminiAPIKey != "" {
		llm, err = ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			zl.Fatal("init gemini", "err", err)
		}
	} else {
		zl.Warn("GEMINI_API_KEY not set, using mock model")
		llm = ai.NewMock()
	}

	// 4) Wiring
	repo := planRepoImp.New(db)
	svc := planSvc.NewPlanService(llm, parser.Markdown(), repo, zl)
	plCtrl := planCtrlImp.NewPlanCtrl(svc, zl)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(e, cfg.AuthSecret, plCtrl, authCtrl, hCtrl)

	zl.Info("listening", "port", cfg.Port, "env", cfg.AppEnv)
	if err := r.Start(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", "err", err)
	}
}
