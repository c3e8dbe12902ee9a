package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityaldip/cargo-pricing/internal/adapter/http/response"
	"github.com/adityaldip/cargo-pricing/internal/domain"
	"github.com/adityaldip/cargo-pricing/internal/usecase"
)

// mockUseCase is a func-based mock implementation of PricingUseCase.
type mockUseCase struct {
	uploadFunc       func(ctx context.Context, records []domain.CargoRecord) ([]domain.CargoRecord, error)
	priceFunc        func(ctx context.Context, recordID string) (*domain.RecordPricing, error)
	recomputeFunc    func(ctx context.Context) ([]domain.RecordPricing, error)
	alternativesFunc func(ctx context.Context, origin, destination string) ([]domain.AlternativeRoute, error)
	optionsFunc      func(ctx context.Context, rateID int64) ([]domain.TransitOption, error)
	variantsFunc     func(ctx context.Context, rateID int64) ([]string, error)
	selectFunc       func(ctx context.Context, rateID int64, recordID, transitRoute string) error
	convertFunc      func(ctx context.Context, recordID string, override domain.ConversionOverride) error
	airportsFunc     func(ctx context.Context) ([]domain.AirportCode, error)
	ratesFunc        func(ctx context.Context, activeOnly bool) ([]domain.SectorRate, error)
}

func (m *mockUseCase) UploadRecords(ctx context.Context, records []domain.CargoRecord) ([]domain.CargoRecord, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, records)
	}
	for i := range records {
		records[i].ID = "generated-id"
	}
	return records, nil
}

func (m *mockUseCase) PriceRecord(ctx context.Context, recordID string) (*domain.RecordPricing, error) {
	if m.priceFunc != nil {
		return m.priceFunc(ctx, recordID)
	}
	return &domain.RecordPricing{}, nil
}

func (m *mockUseCase) RecomputeAll(ctx context.Context) ([]domain.RecordPricing, error) {
	if m.recomputeFunc != nil {
		return m.recomputeFunc(ctx)
	}
	return []domain.RecordPricing{}, nil
}

func (m *mockUseCase) Alternatives(ctx context.Context, origin, destination string) ([]domain.AlternativeRoute, error) {
	if m.alternativesFunc != nil {
		return m.alternativesFunc(ctx, origin, destination)
	}
	return []domain.AlternativeRoute{}, nil
}

func (m *mockUseCase) TransitOptions(ctx context.Context, rateID int64) ([]domain.TransitOption, error) {
	if m.optionsFunc != nil {
		return m.optionsFunc(ctx, rateID)
	}
	return []domain.TransitOption{}, nil
}

func (m *mockUseCase) TransitRouteVariants(ctx context.Context, rateID int64) ([]string, error) {
	if m.variantsFunc != nil {
		return m.variantsFunc(ctx, rateID)
	}
	return []string{}, nil
}

func (m *mockUseCase) SelectTransitOption(ctx context.Context, rateID int64, recordID, transitRoute string) error {
	if m.selectFunc != nil {
		return m.selectFunc(ctx, rateID, recordID, transitRoute)
	}
	return nil
}

func (m *mockUseCase) Convert(ctx context.Context, recordID string, override domain.ConversionOverride) error {
	if m.convertFunc != nil {
		return m.convertFunc(ctx, recordID, override)
	}
	return nil
}

func (m *mockUseCase) Airports(ctx context.Context) ([]domain.AirportCode, error) {
	if m.airportsFunc != nil {
		return m.airportsFunc(ctx)
	}
	return []domain.AirportCode{}, nil
}

func (m *mockUseCase) SectorRates(ctx context.Context, activeOnly bool) ([]domain.SectorRate, error) {
	if m.ratesFunc != nil {
		return m.ratesFunc(ctx, activeOnly)
	}
	return []domain.SectorRate{}, nil
}

var _ usecase.PricingUseCase = (*mockUseCase)(nil)

// setupTestHandler creates a test Echo instance with registered routes.
func setupTestHandler(uc usecase.PricingUseCase) *echo.Echo {
	e := echo.New()
	h := NewPricingHandler(uc)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestUploadRecords_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	body := UploadRecordsRequest{
		Records: []UploadRecordDTO{
			{Origin: "DEFRAX", Destination: "LVRIXX", Inbound: "BT234"},
		},
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/records", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var result UploadRecordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "generated-id", result.Records[0].ID)
}

func TestUploadRecords_EmptyBatch(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/records", UploadRecordsRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, response.CodeValidationError, result.Code)
	assert.Contains(t, result.Details, "records")
}

func TestUploadRecords_MissingEndpoints(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	body := UploadRecordsRequest{
		Records: []UploadRecordDTO{{Origin: "", Destination: ""}},
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/records", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Details, "records[0].origin")
	assert.Contains(t, result.Details, "records[0].destination")
}

func TestUploadRecords_MalformedBody(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecordPricing_Success(t *testing.T) {
	uc := &mockUseCase{
		priceFunc: func(ctx context.Context, recordID string) (*domain.RecordPricing, error) {
			return &domain.RecordPricing{
				Record: domain.CargoRecord{ID: recordID, Origin: "DEFRAX", Destination: "LVRIXX"},
				Segments: domain.RouteSegments{
					Inbound: &domain.RouteLeg{Origin: "FRA", Destination: "RIX"},
				},
				Breakdown: domain.PricedBreakdown{
					Route:    "FRA → RIX",
					TotalSum: 3.00,
					Rates: []domain.SectorRate{
						{ID: 10, Origin: "FRA", Destination: "RIX", Rate: 3.00, IsActive: true},
					},
				},
			}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/records/rec-1/pricing", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result RecordPricingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "rec-1", result.RecordID)
	assert.Equal(t, "FRA → RIX", result.Route)
	assert.Equal(t, "FRA → RIX", result.Legs.Inbound)
	assert.Equal(t, "-", result.Legs.BeforeBT)
	assert.Equal(t, "-", result.Legs.Outbound)
	assert.Equal(t, "-", result.Legs.AfterBT)
	assert.Equal(t, 3.00, result.TotalSum)
	require.Len(t, result.Rates, 1)
	assert.Equal(t, int64(10), result.Rates[0].ID)
	assert.Equal(t, "FRA → RIX", result.Rates[0].Route)
}

func TestGetRecordPricing_ConvertedSuppressesLegs(t *testing.T) {
	uc := &mockUseCase{
		priceFunc: func(ctx context.Context, recordID string) (*domain.RecordPricing, error) {
			return &domain.RecordPricing{
				Record: domain.CargoRecord{ID: recordID, IsConverted: true, AppliedRate: 12.50},
				Segments: domain.RouteSegments{
					Inbound: &domain.RouteLeg{Origin: "FRA", Destination: "RIX"},
				},
				Breakdown: domain.PricedBreakdown{
					Route:    "FRA → IST",
					TotalSum: 12.50,
					Rates:    []domain.SectorRate{},
				},
			}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/records/rec-1/pricing", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result RecordPricingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsConverted)
	assert.Equal(t, 12.50, result.TotalSum)
	assert.Equal(t, "-", result.Legs.Inbound, "converted records suppress derived legs")
	assert.Empty(t, result.Rates)
}

func TestGetRecordPricing_NotFound(t *testing.T) {
	uc := &mockUseCase{
		priceFunc: func(ctx context.Context, recordID string) (*domain.RecordPricing, error) {
			return nil, domain.ErrRecordNotFound
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/records/missing/pricing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, response.CodeNotFound, result.Code)
}

func TestGetRecordPricing_RegistryUnavailable(t *testing.T) {
	uc := &mockUseCase{
		priceFunc: func(ctx context.Context, recordID string) (*domain.RecordPricing, error) {
			return nil, domain.NewRegistryError(assert.AnError)
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/records/rec-1/pricing", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, response.CodeRegistryUnavailable, result.Code)
}

func TestRecompute_Success(t *testing.T) {
	uc := &mockUseCase{
		recomputeFunc: func(ctx context.Context) ([]domain.RecordPricing, error) {
			return []domain.RecordPricing{
				{Record: domain.CargoRecord{ID: "rec-1"}},
				{Record: domain.CargoRecord{ID: "rec-2"}},
			}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/pricing/recompute", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result RecomputeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Count)
}

func TestAlternatives_Success(t *testing.T) {
	var gotOrigin, gotDestination string
	uc := &mockUseCase{
		alternativesFunc: func(ctx context.Context, origin, destination string) ([]domain.AlternativeRoute, error) {
			gotOrigin, gotDestination = origin, destination
			return []domain.AlternativeRoute{
				{Route: "FRA → RIX", Rate: 3.00, IsDirect: true},
			}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/routes/alternatives?origin=DEFRAX&destination=LVRIXX", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "FRA", gotOrigin, "raw codes are normalized before the lookup")
	assert.Equal(t, "RIX", gotDestination)

	var result AlternativesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "FRA", result.Origin)
	require.Len(t, result.Alternatives, 1)
	assert.True(t, result.Alternatives[0].IsDirect)
}

func TestAlternatives_MissingParams(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/api/v1/routes/alternatives", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Details, "origin")
	assert.Contains(t, result.Details, "destination")
}

func TestTransitOptions_Success(t *testing.T) {
	uc := &mockUseCase{
		optionsFunc: func(ctx context.Context, rateID int64) ([]domain.TransitOption, error) {
			return []domain.TransitOption{
				{SectorRateID: rateID, DisplayText: "€25.00 - FRA-RIX Spring - Acme Freight", TotalPrice: 25.00},
			}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/rates/transit/7/options", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result TransitOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(7), result.RateID)
	require.Len(t, result.Options, 1)
	assert.Equal(t, 25.00, result.Options[0].TotalPrice)
}

func TestTransitOptions_BadID(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/api/v1/rates/transit/abc/options", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransitOptions_RateNotFound(t *testing.T) {
	uc := &mockUseCase{
		optionsFunc: func(ctx context.Context, rateID int64) ([]domain.TransitOption, error) {
			return nil, domain.ErrRateNotFound
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/rates/transit/999/options", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, response.MsgRateNotFound, result.Message)
}

func TestTransitVariants_Success(t *testing.T) {
	uc := &mockUseCase{
		variantsFunc: func(ctx context.Context, rateID int64) ([]string, error) {
			return []string{"FRA -> RIX", "FRA -> AMS -> RIX"}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/rates/transit/7/variants", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result TransitVariantsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{"FRA -> RIX", "FRA -> AMS -> RIX"}, result.Variants)
}

func TestSelectTransit_Success(t *testing.T) {
	var gotRateID int64
	var gotRecordID, gotRoute string
	uc := &mockUseCase{
		selectFunc: func(ctx context.Context, rateID int64, recordID, transitRoute string) error {
			gotRateID, gotRecordID, gotRoute = rateID, recordID, transitRoute
			return nil
		},
	}
	e := setupTestHandler(uc)

	body := SelectTransitRequest{RecordID: "rec-1", TransitRoute: "FRA -> AMS -> RIX"}
	rec := makeRequest(e, http.MethodPost, "/api/v1/rates/transit/7/select", body)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), gotRateID)
	assert.Equal(t, "rec-1", gotRecordID)
	assert.Equal(t, "FRA -> AMS -> RIX", gotRoute)
}

func TestSelectTransit_MissingRecordID(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/rates/transit/7/select", SelectTransitRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Details, "record_id")
}

func TestSelectTransit_UnknownVariant(t *testing.T) {
	uc := &mockUseCase{
		selectFunc: func(ctx context.Context, rateID int64, recordID, transitRoute string) error {
			return domain.WrapInvalidRequest("transit route %q is not a selected route of rate %d", transitRoute, rateID)
		},
	}
	e := setupTestHandler(uc)

	body := SelectTransitRequest{RecordID: "rec-1", TransitRoute: "FRA -> XXX -> RIX"}
	rec := makeRequest(e, http.MethodPost, "/api/v1/rates/transit/7/select", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, response.CodeInvalidRequest, result.Code)
}

func TestConvertRecord_Success(t *testing.T) {
	var gotOverride domain.ConversionOverride
	uc := &mockUseCase{
		convertFunc: func(ctx context.Context, recordID string, override domain.ConversionOverride) error {
			gotOverride = override
			return nil
		},
	}
	e := setupTestHandler(uc)

	body := ConvertRecordRequest{
		Origin:      "DEFRAX",
		Destination: "TRISTA",
		AppliedRate: 12.50,
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/records/rec-1/convert", body)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "DEFRAX", gotOverride.Origin)
	assert.Equal(t, 12.50, gotOverride.AppliedRate)
}

func TestConvertRecord_MissingFields(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/records/rec-1/convert", ConvertRecordRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Details, "origin")
	assert.Contains(t, result.Details, "destination")
}

func TestConvertRecord_PeerValidationFailures(t *testing.T) {
	uc := &mockUseCase{
		convertFunc: func(ctx context.Context, recordID string, override domain.ConversionOverride) error {
			errs := &domain.ValidationErrors{}
			errs.Add("destination", "origin and destination must be different")
			errs.Add("outbound", "inbound and outbound flights must be different")
			return errs
		},
	}
	e := setupTestHandler(uc)

	body := ConvertRecordRequest{Origin: "DEFRAX", Destination: "DEFRAX", AppliedRate: 1}
	rec := makeRequest(e, http.MethodPost, "/api/v1/records/rec-1/convert", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var result response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, response.CodeValidationError, result.Code)
	assert.Len(t, result.Details, 2, "peer checks report every failure at once")
	assert.Equal(t, "origin and destination must be different", result.Details["destination"])
	assert.Equal(t, "inbound and outbound flights must be different", result.Details["outbound"])
}

func TestListAirports(t *testing.T) {
	uc := &mockUseCase{
		airportsFunc: func(ctx context.Context) ([]domain.AirportCode, error) {
			return []domain.AirportCode{{ID: 1, Code: "DEFRAX", IsActive: true, IsEU: true}}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/airports", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result []domain.AirportCode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "DEFRAX", result[0].Code)
}

func TestListRates_ActiveFilter(t *testing.T) {
	var gotActiveOnly bool
	uc := &mockUseCase{
		ratesFunc: func(ctx context.Context, activeOnly bool) ([]domain.SectorRate, error) {
			gotActiveOnly = activeOnly
			return []domain.SectorRate{}, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/rates?active=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotActiveOnly)

	rec = makeRequest(e, http.MethodGet, "/api/v1/rates", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotActiveOnly)
}
