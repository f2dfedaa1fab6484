package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"sqlprep/pkg/logger"
	"sqlprep/pkg/plan/service"
)

type PlanCtrl struct {
	svc service.PlanService
	log *logger.Logger
}

func NewPlanCtrl(svc service.PlanService, log *logger.Logger) *PlanCtrl {
	return &PlanCtrl{svc: svc, log: log.With("controller", "plan")}
}

func (h *PlanCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req service.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "bad json"})
	}

	res, err := h.svc.Generate(c.Request().Context(), uid, req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, verr)
		}
		h.log.Error("generate plan failed", "user_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error generating SQL prep plan"})
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *PlanCtrl) GetSaved(c echo.Context) error {
	uid := c.Get("uid").(string)

	p, err := h.svc.GetSaved(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "No SQL prep plan found"})
		}
		h.log.Error("fetch plan failed", "user_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error retrieving SQL prep plan"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) UpdateProgress(c echo.Context) error {
	uid := c.Get("uid").(string)

	var body struct {
		QuestionID string `json:"questionId"`
		Completed  bool   `json:"completed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "bad json"})
	}

	p, err := h.svc.UpdateProgress(c.Request().Context(), uid, body.QuestionID, body.Completed)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, verr)
		case errors.Is(err, service.ErrPlanNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"message": "No SQL prep plan found"})
		case errors.Is(err, service.ErrQuestionNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Question not found"})
		}
		h.log.Error("update progress failed", "user_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error updating question progress"})
	}
	return c.JSON(http.StatusOK, p)
}

// Export streams the saved plan as an .xlsx workbook, one row per question.
func (h *PlanCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)

	p, err := h.svc.GetSaved(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "No SQL prep plan found"})
		}
		h.log.Error("export plan failed", "user_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error exporting SQL prep plan"})
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	headers := []string{"#", "Title", "Difficulty", "Concepts", "Category", "Description", "Completed"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for i, q := range p.Questions {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), q.Title)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), q.Difficulty)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), strings.Join(q.Concepts, ", "))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), q.Category)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), q.Description)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), q.Completed)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.log.Error("write workbook failed", "user_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error exporting SQL prep plan"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sql-prep-plan.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
