package codesystem

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radcoder/radcoder/pkg/pagination"
)

// Handler provides REST endpoints for code catalog search.
type Handler struct {
	svc *Service
}

// NewHandler creates a new code system handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers code search routes on the API group. Extra
// middleware (response caching, ETags) applies to the codes routes only.
func (h *Handler) RegisterRoutes(api *echo.Group, mw ...echo.MiddlewareFunc) {
	codes := api.Group("/codes", mw...)
	codes.GET("/loinc", h.SearchLOINC)
	codes.GET("/icd10pcs", h.SearchICD10PCS)
}

// SearchLOINC handles GET /api/v1/codes/loinc?q=...
func (h *Handler) SearchLOINC(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter 'q' is required")
	}
	pg := pagination.FromContext(c)
	records, total, err := h.svc.SearchLOINC(c.Request().Context(), query, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(records, total, pg.Limit, pg.Offset))
}

// SearchICD10PCS handles GET /api/v1/codes/icd10pcs?q=...
func (h *Handler) SearchICD10PCS(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter 'q' is required")
	}
	pg := pagination.FromContext(c)
	records, total, err := h.svc.SearchICD10PCS(c.Request().Context(), query, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(records, total, pg.Limit, pg.Offset))
}
