/*
handlers.go - HTTP API handlers

PURPOSE:
  Exposes the frequency type and the curve-set store via REST. Handles
  HTTP request/response and JSON serialization, delegating everything
  interesting to the schedule and market packages.

ENDPOINTS:
  Frequencies:
    GET    /api/frequencies/{text}        Parse and describe a frequency
    GET    /api/frequencies/{text}/shift  Add/subtract it from a date

  Curve sets:
    GET    /api/curves                    List stored sets
    POST   /api/curves                    Create a set
    POST   /api/curves/fixtures           Load the EUR fixture set
    GET    /api/curves/{name}             Get a set with nodes
    DELETE /api/curves/{name}             Delete a set

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid frequency text, invalid curve data, bad dates
  - 404: Unknown curve set
  - 409: Duplicate curve set name
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/todatamining/strata/market"
	"github.com/todatamining/strata/schedule"
	"github.com/todatamining/strata/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// FREQUENCY HANDLERS
// =============================================================================

// DescribeFrequency parses the path text and reports the frequency's
// canonical form, classification and events per year.
func (h *Handler) DescribeFrequency(w http.ResponseWriter, r *http.Request) {
	f, err := schedule.Parse(chi.URLParam(r, "text"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, frequencyDTO(f))
}

// ShiftDate adds or subtracts the frequency's period to a query date.
// Query params: date=YYYY-MM-DD, direction=add|subtract (default add).
func (h *Handler) ShiftDate(w http.ResponseWriter, r *http.Request) {
	f, err := schedule.Parse(chi.URLParam(r, "text"))
	if err != nil {
		writeError(w, err)
		return
	}

	dateText := r.URL.Query().Get("date")
	base, err := time.Parse(dateLayout, dateText)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", dateText)})
		return
	}

	direction := r.URL.Query().Get("direction")
	if direction == "" {
		direction = "add"
	}

	var result time.Time
	switch direction {
	case "add":
		result, err = f.AddTo(base)
	case "subtract":
		result, err = f.SubtractFrom(base)
	default:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid direction %q, want add or subtract", direction)})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ShiftResponseDTO{
		Frequency: f.String(),
		Date:      base.Format(dateLayout),
		Direction: direction,
		Result:    result.Format(dateLayout),
	})
}

// =============================================================================
// CURVE SET HANDLERS
// =============================================================================

// ListCurveSets returns summaries of all stored sets.
func (h *Handler) ListCurveSets(w http.ResponseWriter, r *http.Request) {
	infos, err := h.Store.ListCurveSets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	dtos := make([]CurveSetInfoDTO, 0, len(infos))
	for _, info := range infos {
		dtos = append(dtos, CurveSetInfoDTO{
			ID:            info.ID,
			Name:          info.Name,
			ValuationDate: info.ValuationDate.Format(dateLayout),
			CurveCount:    info.CurveCount,
			CreatedAt:     info.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateCurveSet stores a new named curve set from the request body.
func (h *Handler) CreateCurveSet(w http.ResponseWriter, r *http.Request) {
	var req CreateCurveSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}
	valuation, err := time.Parse(dateLayout, req.ValuationDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid valuationDate %q, want YYYY-MM-DD", req.ValuationDate)})
		return
	}
	if len(req.Curves) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "at least one curve is required"})
		return
	}

	curves := make([]*market.Curve, 0, len(req.Curves))
	for _, dto := range req.Curves {
		curve, err := curveFromDTO(dto)
		if err != nil {
			writeError(w, err)
			return
		}
		curves = append(curves, curve)
	}

	id, err := h.Store.SaveCurveSet(r.Context(), req.Name, valuation, curves)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id, "name": req.Name})
}

// LoadFixtures stores the canonical EUR fixture set under the name
// "eur-fixture" for the valuation date in the query (default today).
func (h *Handler) LoadFixtures(w http.ResponseWriter, r *http.Request) {
	valuation := time.Now().UTC().Truncate(24 * time.Hour)
	if dateText := r.URL.Query().Get("date"); dateText != "" {
		var err error
		if valuation, err = time.Parse(dateLayout, dateText); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", dateText)})
			return
		}
	}

	curves := []*market.Curve{market.EurDiscountCurve(), market.EurForward3MCurve()}
	id, err := h.Store.SaveCurveSet(r.Context(), "eur-fixture", valuation, curves)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id, "name": "eur-fixture"})
}

// GetCurveSet returns a full set with nodes.
func (h *Handler) GetCurveSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.Store.GetCurveSet(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, curveSetDTO(set))
}

// DeleteCurveSet removes a set by name.
func (h *Handler) DeleteCurveSet(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteCurveSet(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func curveFromDTO(dto CurveDTO) (*market.Curve, error) {
	meta := market.CurveMetadata{
		Name:       market.CurveName(dto.Name),
		XValueType: market.ValueType(dto.XValueType),
		YValueType: market.ValueType(dto.YValueType),
		DayCount:   dto.DayCount,
	}
	xs := make([]float64, 0, len(dto.Nodes))
	ys := make([]decimal.Decimal, 0, len(dto.Nodes))
	for _, node := range dto.Nodes {
		y, err := decimal.NewFromString(node.Y)
		if err != nil {
			return nil, fmt.Errorf("%w %q: bad node value %q", market.ErrInvalidCurve, dto.Name, node.Y)
		}
		xs = append(xs, node.X)
		ys = append(ys, y)
	}
	return market.NewCurve(meta, xs, ys)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, schedule.ErrInvalidFrequency),
		errors.Is(err, schedule.ErrDateRange),
		errors.Is(err, market.ErrInvalidCurve),
		errors.Is(err, market.ErrInvalidMeasure):
		status = http.StatusBadRequest
	case errors.Is(err, sqlite.ErrSetNotFound),
		errors.Is(err, market.ErrCurveNotFound):
		status = http.StatusNotFound
	case errors.Is(err, sqlite.ErrDuplicateSet):
		status = http.StatusConflict
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
