/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the domain types
  from the external contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers and domain constructors, not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/todatamining/strata/market"
	"github.com/todatamining/strata/schedule"
	"github.com/todatamining/strata/store/sqlite"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// =============================================================================
// FREQUENCY TYPES
// =============================================================================

// FrequencyDTO describes a parsed frequency.
type FrequencyDTO struct {
	Name          string `json:"name"`
	Years         int    `json:"years"`
	Months        int    `json:"months"`
	Days          int    `json:"days"`
	Term          bool   `json:"term"`
	WeekBased     bool   `json:"weekBased"`
	MonthBased    bool   `json:"monthBased"`
	EventsPerYear *int   `json:"eventsPerYear,omitempty"`
	Normalized    string `json:"normalized"`
}

func frequencyDTO(f schedule.Frequency) FrequencyDTO {
	p := f.Period()
	dto := FrequencyDTO{
		Name:       f.String(),
		Years:      p.Years,
		Months:     p.Months,
		Days:       p.Days,
		Term:       f.IsTerm(),
		WeekBased:  f.IsWeekBased(),
		MonthBased: f.IsMonthBased(),
		Normalized: f.Normalized().String(),
	}
	if n, err := f.EventsPerYear(); err == nil {
		dto.EventsPerYear = &n
	}
	return dto
}

// ShiftResponseDTO is the result of adding or subtracting a frequency
// from a date.
type ShiftResponseDTO struct {
	Frequency string `json:"frequency"`
	Date      string `json:"date"`
	Direction string `json:"direction"`
	Result    string `json:"result"`
}

// =============================================================================
// CURVE TYPES
// =============================================================================

// NodeDTO is a single curve node. Y travels as a decimal string so no
// precision is lost on the wire.
type NodeDTO struct {
	X float64 `json:"x"`
	Y string  `json:"y"`
}

// CurveDTO carries one curve with its metadata and nodes.
type CurveDTO struct {
	Name       string    `json:"name"`
	XValueType string    `json:"xValueType"`
	YValueType string    `json:"yValueType"`
	DayCount   string    `json:"dayCount,omitempty"`
	Nodes      []NodeDTO `json:"nodes"`
}

func curveDTO(c *market.Curve) CurveDTO {
	meta := c.Metadata()
	dto := CurveDTO{
		Name:       string(meta.Name),
		XValueType: string(meta.XValueType),
		YValueType: string(meta.YValueType),
		DayCount:   meta.DayCount,
	}
	for _, node := range c.Nodes() {
		dto.Nodes = append(dto.Nodes, NodeDTO{X: node.X, Y: node.Y.String()})
	}
	return dto
}

// CurveSetDTO is a full curve set response.
type CurveSetDTO struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ValuationDate string     `json:"valuationDate"`
	Curves        []CurveDTO `json:"curves"`
}

func curveSetDTO(set *sqlite.CurveSet) CurveSetDTO {
	dto := CurveSetDTO{
		ID:            set.ID,
		Name:          set.Name,
		ValuationDate: set.ValuationDate.Format(dateLayout),
	}
	for _, c := range set.Curves {
		dto.Curves = append(dto.Curves, curveDTO(c))
	}
	return dto
}

// CurveSetInfoDTO is the listing view of a curve set.
type CurveSetInfoDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ValuationDate string    `json:"valuationDate"`
	CurveCount    int       `json:"curveCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateCurveSetRequest creates a named curve set.
type CreateCurveSetRequest struct {
	Name          string     `json:"name"`
	ValuationDate string     `json:"valuationDate"`
	Curves        []CurveDTO `json:"curves"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
