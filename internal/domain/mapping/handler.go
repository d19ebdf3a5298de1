package mapping

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radcoder/radcoder/internal/domain/codesystem"
	"github.com/radcoder/radcoder/internal/platform/tabular"
)

// ClassifierStatus reports how the hybrid classifier is wired, for the
// status endpoint. Model and BaseURL are empty when disabled.
type ClassifierStatus struct {
	Enabled   bool   `json:"enabled"`
	Model     string `json:"model,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
	Threshold string `json:"threshold,omitempty"`
}

// Metrics receives mapping outcome counts. Implementations must be safe
// for concurrent use.
type Metrics interface {
	MappingRowCounter()
	MappingOutcomeCounter(system, confidence string)
	MappingIssueCounter(kind string)
	ClassifierCallCounter(outcome string)
}

// Handler provides REST endpoints for the mapping engine.
type Handler struct {
	engine  *Engine
	status  ClassifierStatus
	metrics Metrics
	workers int
}

// NewHandler creates a new mapping handler.
func NewHandler(engine *Engine, status ClassifierStatus) *Handler {
	return &Handler{engine: engine, status: status}
}

// SetMetrics attaches a metrics sink. Without one the handler records
// nothing.
func (h *Handler) SetMetrics(m Metrics) {
	h.metrics = m
}

// SetWorkers fixes the worker count for batch requests. Zero keeps the
// one-per-CPU default.
func (h *Handler) SetWorkers(n int) {
	h.workers = n
}

func (h *Handler) record(results ...RowResult) {
	if h.metrics == nil {
		return
	}
	for i := range results {
		r := &results[i]
		h.metrics.MappingRowCounter()
		h.metrics.MappingOutcomeCounter(string(codesystem.SystemLOINC), string(r.LOINC.Confidence))
		h.metrics.MappingOutcomeCounter(string(codesystem.SystemICD10PCS), string(r.ICD10PCS.Confidence))
		for _, issue := range r.Issues {
			h.metrics.MappingIssueCounter(string(issue.Kind))
			if issue.Kind == IssueClassifierAssisted {
				h.metrics.ClassifierCallCounter("adopted")
			}
		}
	}
}

// RegisterRoutes registers mapping routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/map", h.MapStudy)
	api.POST("/map/batch", h.MapBatch)
	api.POST("/map/file", h.MapFile)
	api.GET("/classifier/status", h.GetClassifierStatus)
}

type batchRequest struct {
	Studies []Study `json:"studies"`
}

func validateStudy(s Study) error {
	if s.Modality == "" {
		return fmt.Errorf("modality is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// MapStudy handles POST /api/v1/map with a single study in the body.
func (h *Handler) MapStudy(c echo.Context) error {
	var study Study
	if err := c.Bind(&study); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validateStudy(study); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result := h.engine.MapStudy(c.Request().Context(), study)
	h.record(result)
	return c.JSON(http.StatusOK, result)
}

// MapBatch handles POST /api/v1/map/batch with a studies array. Empty
// value_code fields are autogenerated as ROW_n so every result row stays
// addressable.
func (h *Handler) MapBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Studies) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one study is required")
	}
	for i := range req.Studies {
		if err := validateStudy(req.Studies[i]); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("study %d: %s", i+1, err.Error()))
		}
		if req.Studies[i].ValueCode == "" {
			req.Studies[i].ValueCode = fmt.Sprintf("ROW_%d", i+1)
		}
	}

	result, err := h.engine.MapBatch(c.Request().Context(), req.Studies, BatchOptions{Workers: h.workers})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.record(result.Results...)
	return c.JSON(http.StatusOK, result)
}

// MapFile handles POST /api/v1/map/file with a multipart CSV upload and
// responds with the mapped CSV as an attachment.
func (h *Handler) MapFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to open uploaded file")
	}
	defer src.Close()

	table, err := tabular.Read(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	studies, err := DecodeStudies(table)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.engine.MapBatch(c.Request().Context(), studies, BatchOptions{Workers: h.workers})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.record(result.Results...)

	var buf bytes.Buffer
	if err := tabular.Write(&buf, EncodeResults(result.Results)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="mapped_%s"`, file.Filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// GetClassifierStatus handles GET /api/v1/classifier/status.
func (h *Handler) GetClassifierStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status)
}
