package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// SimulateResponse is the body of POST /api/simulate.
type SimulateResponse struct {
	Input          simulation.Input  `json:"input"`
	Result         simulation.Result `json:"result"`
	Interpretation string            `json:"interpretation"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	values := s.config.Defaults.Values()
	query := r.URL.Query()
	for _, f := range simulation.Fields {
		if v := query.Get(f.Key); v != "" {
			values[f.Key] = v
		}
	}

	s.renderPage(w, r, http.StatusOK, "index.html", pageView{
		Fields: formFields(values, nil),
	})
}

func (s *Server) handleSimulateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, "index.html", pageView{
			Fields: formFields(s.config.Defaults.Values(), nil),
			Error:  "Formulário inválido.",
		})
		return
	}

	values := fieldValues(r.PostForm)
	in, errs := parseValues(values)
	if len(errs) > 0 {
		s.renderPage(w, r, http.StatusBadRequest, "index.html", pageView{
			Fields: formFields(values, errs),
			Error:  "Corrija os campos destacados.",
		})
		return
	}

	_, rec := s.engine.Simulate(in)
	left, right := report.SummaryColumns(rec)
	query := encodeInput(in)

	s.renderPage(w, r, http.StatusOK, "results.html", pageView{
		Left:           left,
		Right:          right,
		Interpretation: report.Interpretation(rec),
		Disclaimer:     report.Disclaimer,
		ReportURL:      "/report?" + query,
		EditURL:        "/?" + query,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	format, ok := s.exportFormat(w, query)
	if !ok {
		return
	}

	in, errs := parseValues(fieldValues(query))
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "invalid simulation input",
			"fields": errs,
		})
		return
	}

	_, rec := s.engine.Simulate(in)
	s.writeExport(w, r, rec, format)
}

func (s *Server) handleAPISimulate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	res, rec := s.engine.Simulate(in)
	writeJSON(w, http.StatusOK, SimulateResponse{
		Input:          in,
		Result:         res,
		Interpretation: report.Interpretation(rec),
	})
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	format, ok := s.exportFormat(w, r.URL.Query())
	if !ok {
		return
	}

	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	_, rec := s.engine.Simulate(in)
	s.writeExport(w, r, rec, format)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// exportFormat reads ?format=, defaulting to PDF.
func (s *Server) exportFormat(w http.ResponseWriter, query url.Values) (report.ExportFormat, bool) {
	name := query.Get("format")
	if name == "" {
		return report.FormatPDF, true
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return f, true
}

func (s *Server) writeExport(w http.ResponseWriter, r *http.Request, rec simulation.Record, f report.ExportFormat) {
	var buf bytes.Buffer
	if err := s.exporter.Write(&buf, rec, f); err != nil {
		s.logger.Error("Failed to render report",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("format", string(f)),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+report.FileName(rec.Days(), f))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("Report download interrupted", zap.Error(err))
	}
}

// renderPage answers 500 only when the template fails. Once the header is
// out, a failed write is logged and dropped.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, view pageView) {
	body, err := s.pages.execute(name, view)
	if err != nil {
		s.logger.Error("Failed to render page",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("page", name),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("Page write interrupted",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("page", name),
			zap.Error(err))
	}
}

// decodeInput reads a JSON Input body and validates it, answering 400 on
// any problem.
func decodeInput(w http.ResponseWriter, r *http.Request) (simulation.Input, bool) {
	var in simulation.Input

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return in, false
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return in, false
	}
	return in, true
}

func fieldValues(form url.Values) map[string]string {
	values := make(map[string]string, len(simulation.Fields))
	for _, f := range simulation.Fields {
		values[f.Key] = form.Get(f.Key)
	}
	return values
}

// parseValues parses raw form values, collecting one message per bad field.
func parseValues(values map[string]string) (simulation.Input, map[string]string) {
	errs := make(map[string]string)
	for _, f := range simulation.Fields {
		if _, err := simulation.ParseField(f, values[f.Key]); err != nil {
			errs[f.Key] = err.Error()
		}
	}
	if len(errs) > 0 {
		return simulation.Input{}, errs
	}

	in, err := simulation.ParseInput(values)
	if err != nil {
		errs["input"] = err.Error()
	}
	return in, errs
}

func encodeInput(in simulation.Input) string {
	query := url.Values{}
	for k, v := range in.Values() {
		query.Set(k, v)
	}
	return query.Encode()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
