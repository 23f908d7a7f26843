/*
handlers.go - HTTP API handlers for the payroll roster

PURPOSE:
  Exposes the roster and payroll computation via REST API. This is the
  layer that used to be a desktop form: it parses input, builds employee
  records, calls the roster and renders results.

ENDPOINTS:
  Employees:
    GET    /api/employees               List roster in insertion order
    POST   /api/employees               Add employee from JSON
    DELETE /api/employees/{index}       Remove by roster position

  Payroll:
    GET    /api/payroll                 Computed pay per employee + total
    GET    /api/payroll/report          Text listing
    GET    /api/payroll/report.pdf      PDF payroll sheet

  Forms:
    GET    /api/forms/{kind}            Visible inputs for a kind
    POST   /api/forms/submit            Build from raw text and add

  Scenarios:
    GET    /api/scenarios               List demo rosters
    POST   /api/scenarios/load          Replace roster with a demo

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, unknown kind, unparseable number, bad index
  - 404: Roster position does not exist
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo roster loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/form"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/report"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   payroll.Store
	Factory *factory.EmployeeFactory
	Report  report.Options

	mu              sync.Mutex
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store payroll.Store, opts report.Options) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewEmployeeFactory(),
		Report:  opts,
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns the roster in insertion order.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(entries))
	for i, e := range entries {
		dtos[i] = h.toEmployeeDTO(i, e)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee appends an employee given as factory JSON.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req factory.EmployeeJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Factory.FromJSON(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee", err)
		return
	}

	h.addEmployee(w, r, emp)
}

// RemoveEmployee removes the employee at a roster position.
func (h *Handler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid index", err)
		return
	}

	removed, err := h.Store.Remove(r.Context(), index)
	if err != nil {
		if payroll.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Employee not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to remove employee", err)
		return
	}

	log.Info().
		Str("employee_id", string(removed.ID)).
		Int("index", index).
		Msg("employee removed")

	writeJSON(w, http.StatusOK, h.toEmployeeDTO(index, removed))
}

func (h *Handler) addEmployee(w http.ResponseWriter, r *http.Request, emp payroll.Employee) {
	entry, index, err := h.Store.Add(r.Context(), emp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add employee", err)
		return
	}

	log.Info().
		Str("employee_id", string(entry.ID)).
		Str("kind", string(emp.Kind())).
		Int("index", index).
		Msg("employee added")

	writeJSON(w, http.StatusCreated, h.toEmployeeDTO(index, entry))
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// GetPayroll computes pay for every employee on the roster.
func (h *Handler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	p, err := payroll.ComputeFrom(r.Context(), h.Store)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute payroll", err)
		return
	}

	counts, err := h.Store.CountByKind(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count employees", err)
		return
	}

	writeJSON(w, http.StatusOK, h.toPayrollDTO(p, counts))
}

// GetPayrollReport renders the payroll as plain text.
func (h *Handler) GetPayrollReport(w http.ResponseWriter, r *http.Request) {
	p, err := payroll.ComputeFrom(r.Context(), h.Store)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute payroll", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := report.WriteText(w, p, h.Report); err != nil {
		log.Error().Err(err).Msg("failed to write payroll report")
	}
}

// GetPayrollPDF renders the payroll as a PDF sheet.
func (h *Handler) GetPayrollPDF(w http.ResponseWriter, r *http.Request) {
	p, err := payroll.ComputeFrom(r.Context(), h.Store)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute payroll", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="payroll.pdf"`)
	w.WriteHeader(http.StatusOK)
	if err := report.WritePDF(w, p, h.Report); err != nil {
		log.Error().Err(err).Msg("failed to write payroll pdf")
	}
}

// =============================================================================
// FORM HANDLERS
// =============================================================================

// GetForm returns the inputs shown for a kind.
func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	kind, err := payroll.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown employee kind", err)
		return
	}

	writeJSON(w, http.StatusOK, toFormDTO(form.New(kind)))
}

// SubmitForm builds an employee from raw form text and adds it.
// Hidden fields for the selected kind are ignored.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	kind, err := payroll.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown employee kind", err)
		return
	}

	state := form.New(kind)
	for field, value := range req.Values {
		state = form.Reduce(state, form.SetField{Field: form.Field(field), Value: value})
	}

	emp, err := state.Build()
	if err != nil {
		var fieldErr *form.FieldError
		if errors.As(err, &fieldErr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   fieldErr.Message,
				Code:    "invalid_number",
				Details: map[string]string{"field": string(fieldErr.Field), "value": fieldErr.Value},
			})
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid form", err)
		return
	}

	h.addEmployee(w, r, emp)
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg(message)
	}
	writeJSON(w, status, resp)
}
