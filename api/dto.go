/*
dto.go - Data Transfer Objects for API requests and responses

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Employee: EmployeeDTO (request bodies use factory.EmployeeJSON)
  Payroll:  PayrollDTO, PayrollLineDTO
  Forms:    FormDTO, SubmitFormRequest
  Scenarios: ScenarioDTO, LoadScenarioRequest

AMOUNTS:
  Decimal values are serialized as JSON strings ("550000") to keep
  precision across clients.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/employee.go: EmployeeJSON type
*/
package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/form"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents a roster entry in API responses.
type EmployeeDTO struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Label string `json:"label"`
	factory.EmployeeJSON
}

// PayrollLineDTO is the computed pay of one roster entry.
type PayrollLineDTO struct {
	Index    int             `json:"index"`
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	Name     string          `json:"name"`
	Position string          `json:"position"`
	Amount   decimal.Decimal `json:"amount"`
}

// PayrollDTO is the payroll of the whole roster.
type PayrollDTO struct {
	Lines     []PayrollLineDTO `json:"lines"`
	Total     decimal.Decimal  `json:"total"`
	Currency  string           `json:"currency"`
	Headcount map[string]int   `json:"headcount"` // entries per kind present
}

// FormDTO describes which inputs the add-employee form shows for a kind.
type FormDTO struct {
	Kind   string   `json:"kind"`
	Fields []string `json:"fields"`
}

// SubmitFormRequest carries the raw text typed into the form.
type SubmitFormRequest struct {
	Kind   string            `json:"kind"`
	Values map[string]string `json:"values"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func (h *Handler) toEmployeeDTO(index int, e payroll.Entry) EmployeeDTO {
	dto := EmployeeDTO{
		Index:        index,
		ID:           string(e.ID),
		Label:        e.Employee.Name() + " (" + e.Employee.Position() + ")",
		EmployeeJSON: h.Factory.ToJSON(e.Employee),
	}
	// ToJSON leaves the fixed positions out of the wire form; the API shows them.
	dto.Position = e.Employee.Position()
	return dto
}

func (h *Handler) toPayrollDTO(p payroll.Payroll, counts map[payroll.Kind]int) PayrollDTO {
	lines := make([]PayrollLineDTO, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = PayrollLineDTO{
			Index:    i,
			ID:       string(l.ID),
			Kind:     string(l.Employee.Kind()),
			Name:     l.Employee.Name(),
			Position: l.Employee.Position(),
			Amount:   l.Amount,
		}
	}
	headcount := make(map[string]int, len(counts))
	for k, n := range counts {
		headcount[string(k)] = n
	}
	return PayrollDTO{Lines: lines, Total: p.Total(), Currency: h.Report.Code, Headcount: headcount}
}

func toFormDTO(s form.State) FormDTO {
	fields := s.VisibleFields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return FormDTO{Kind: string(s.Kind), Fields: out}
}
