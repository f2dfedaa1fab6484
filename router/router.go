package router

import (
	"github.com/labstack/echo/v4"

	"sqlprep/pkg/middleware"
)

func New(
	e *echo.Echo,
	authSecret string,
	planCtrl interface {
		Generate(echo.Context) error
		GetSaved(echo.Context) error
		UpdateProgress(echo.Context) error
		Export(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/devlogin", authCtrl.DevLogin)

	api := e.Group("/api", middleware.Identity(authSecret))
	api.GET("/whoami", authCtrl.WhoAmI)

	g := api.Group("/sql-prep")
	g.POST("/generate", planCtrl.Generate)
	g.GET("/saved-plan", planCtrl.GetSaved)
	g.PATCH("/update-progress", planCtrl.UpdateProgress)
	g.GET("/export", planCtrl.Export)

	return e
}
