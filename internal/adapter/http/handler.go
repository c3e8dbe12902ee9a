// Package http provides the HTTP handler layer for the cargo pricing API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adityaldip/cargo-pricing/internal/adapter/http/response"
	"github.com/adityaldip/cargo-pricing/internal/domain"
	"github.com/adityaldip/cargo-pricing/internal/usecase"
)

// PricingHandler handles HTTP requests for the cargo pricing endpoints.
type PricingHandler struct {
	useCase usecase.PricingUseCase
}

// NewPricingHandler creates a new PricingHandler with the given use case.
func NewPricingHandler(uc usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{
		useCase: uc,
	}
}

// UploadRecords handles POST /api/v1/records
//
// @Summary Upload cargo records
// @Description Store a batch of raw cargo rows for pricing
// @Tags records
// @Accept json
// @Produce json
// @Param request body UploadRecordsRequest true "Records to upload"
// @Success 201 {object} UploadRecordsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/records [post]
func (h *PricingHandler) UploadRecords(c echo.Context) error {
	var req UploadRecordsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	stored, err := h.useCase.UploadRecords(c.Request().Context(), ToDomainRecords(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, &UploadRecordsResponse{
		Records: stored,
		Count:   len(stored),
	})
}

// GetRecordPricing handles GET /api/v1/records/:id/pricing
//
// @Summary Price one record
// @Description Segment one cargo record and match sector rates over its legs
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} RecordPricingDTO
// @Failure 404 {object} response.ErrorDetail "Record not found"
// @Failure 503 {object} response.ErrorDetail "Registry unavailable"
// @Router /api/v1/records/{id}/pricing [get]
func (h *PricingHandler) GetRecordPricing(c echo.Context) error {
	pricing, err := h.useCase.PriceRecord(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToRecordPricingDTO(*pricing))
}

// Recompute handles POST /api/v1/pricing/recompute
//
// @Summary Recompute all pricing
// @Description Re-run segmentation and matching over the full working set
// @Tags pricing
// @Produce json
// @Success 200 {object} RecomputeResponse
// @Failure 503 {object} response.ErrorDetail "Registry unavailable"
// @Router /api/v1/pricing/recompute [post]
func (h *PricingHandler) Recompute(c echo.Context) error {
	results, err := h.useCase.RecomputeAll(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	dtos := ToRecordPricingDTOs(results)
	return response.OK(c, &RecomputeResponse{
		Results: dtos,
		Count:   len(dtos),
	})
}

// Alternatives handles GET /api/v1/routes/alternatives
//
// @Summary List alternative routes
// @Description List priced sectors sharing an endpoint with the requested pair, direct matches first
// @Tags routes
// @Produce json
// @Param origin query string true "Origin code"
// @Param destination query string true "Destination code"
// @Success 200 {object} AlternativesResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/routes/alternatives [get]
func (h *PricingHandler) Alternatives(c echo.Context) error {
	origin := domain.NormalizeCode(c.QueryParam("origin"))
	destination := domain.NormalizeCode(c.QueryParam("destination"))

	if err := validateAlternativesQuery(origin, destination); err != nil {
		return h.handleValidationError(c, err)
	}

	alternatives, err := h.useCase.Alternatives(c.Request().Context(), origin, destination)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &AlternativesResponse{
		Origin:       origin,
		Destination:  destination,
		Alternatives: alternatives,
	})
}

// TransitOptions handles GET /api/v1/rates/transit/:id/options
//
// @Summary List transit rate options
// @Description Generate the selectable pricing variants of a transit rate
// @Tags rates
// @Produce json
// @Param id path int true "Transit rate ID"
// @Success 200 {object} TransitOptionsResponse
// @Failure 404 {object} response.ErrorDetail "Rate not found"
// @Router /api/v1/rates/transit/{id}/options [get]
func (h *PricingHandler) TransitOptions(c echo.Context) error {
	rateID, err := parseRateID(c)
	if err != nil {
		return response.BadRequest(c, "id must be a numeric rate id")
	}

	options, err := h.useCase.TransitOptions(c.Request().Context(), rateID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &TransitOptionsResponse{
		RateID:  rateID,
		Options: options,
	})
}

// TransitVariants handles GET /api/v1/rates/transit/:id/variants
//
// @Summary Enumerate transit route variants
// @Description Enumerate every stop combination of a transit rate as display routes
// @Tags rates
// @Produce json
// @Param id path int true "Transit rate ID"
// @Success 200 {object} TransitVariantsResponse
// @Failure 404 {object} response.ErrorDetail "Rate not found"
// @Router /api/v1/rates/transit/{id}/variants [get]
func (h *PricingHandler) TransitVariants(c echo.Context) error {
	rateID, err := parseRateID(c)
	if err != nil {
		return response.BadRequest(c, "id must be a numeric rate id")
	}

	variants, err := h.useCase.TransitRouteVariants(c.Request().Context(), rateID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &TransitVariantsResponse{
		RateID:   rateID,
		Variants: variants,
	})
}

// SelectTransit handles POST /api/v1/rates/transit/:id/select
//
// @Summary Select a transit option
// @Description Persist a chosen transit rate variant onto a cargo record
// @Tags rates
// @Accept json
// @Produce json
// @Param id path int true "Transit rate ID"
// @Param request body SelectTransitRequest true "Selection"
// @Success 204 "Selection saved"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Rate or record not found"
// @Router /api/v1/rates/transit/{id}/select [post]
func (h *PricingHandler) SelectTransit(c echo.Context) error {
	rateID, err := parseRateID(c)
	if err != nil {
		return response.BadRequest(c, "id must be a numeric rate id")
	}

	var req SelectTransitRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	err = h.useCase.SelectTransitOption(c.Request().Context(), rateID, req.RecordID, req.TransitRoute)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// ConvertRecord handles POST /api/v1/records/:id/convert
//
// @Summary Convert a record
// @Description Replace the derived segmentation and price of a record with explicit values
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body ConvertRecordRequest true "Override values"
// @Success 204 "Conversion saved"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Record not found"
// @Router /api/v1/records/{id}/convert [post]
func (h *PricingHandler) ConvertRecord(c echo.Context) error {
	var req ConvertRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	err := h.useCase.Convert(c.Request().Context(), c.Param("id"), ToDomainOverride(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// ListAirports handles GET /api/v1/airports
//
// @Summary List airport codes
// @Tags registry
// @Produce json
// @Success 200 {array} domain.AirportCode
// @Failure 503 {object} response.ErrorDetail "Registry unavailable"
// @Router /api/v1/airports [get]
func (h *PricingHandler) ListAirports(c echo.Context) error {
	airports, err := h.useCase.Airports(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, airports)
}

// ListRates handles GET /api/v1/rates
//
// @Summary List sector rates
// @Description List the sector rate registry; pass active=true to filter to active rows
// @Tags registry
// @Produce json
// @Param active query bool false "Only active rates"
// @Success 200 {array} domain.SectorRate
// @Failure 503 {object} response.ErrorDetail "Registry unavailable"
// @Router /api/v1/rates [get]
func (h *PricingHandler) ListRates(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	rates, err := h.useCase.SectorRates(c.Request().Context(), activeOnly)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, rates)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *PricingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *PricingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *PricingHandler) handleError(c echo.Context, err error) error {
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	if domain.IsInvalidRequest(err) {
		return response.BadRequest(c, err.Error())
	}

	if domain.IsRecordNotFound(err) {
		return response.NotFound(c, response.MsgRecordNotFound)
	}

	if errors.Is(err, domain.ErrRateNotFound) {
		return response.NotFound(c, response.MsgRateNotFound)
	}

	if domain.IsRegistryUnavailable(err) {
		return response.RegistryUnavailable(c)
	}

	return response.InternalServerError(c)
}

// parseRateID parses the numeric :id path parameter.
func parseRateID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
