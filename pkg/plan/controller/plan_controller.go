package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Generate(c echo.Context) error
	GetSaved(c echo.Context) error
	UpdateProgress(c echo.Context) error
	Export(c echo.Context) error
}
