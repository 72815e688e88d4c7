package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rovshanmuradov/inbeef/internal/branding"
	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func scenarioA() simulation.Input {
	return simulation.Input{
		Days:                 30,
		LivePricePerKg:       12,
		AnimalCount:          100,
		StandardPricePerKg:   2,
		StandardConsumptionG: 100,
		InbeefPricePerKg:     3,
		InbeefConsumptionG:   120,
		StandardDailyGainG:   900,
		ExtraDailyGainG:      150,
	}
}

func newTestServer(t *testing.T, assets branding.Assets) *Server {
	t.Helper()
	logger := zaptest.NewLogger(t)
	renderer := report.NewRenderer(report.RendererConfig{
		Logger: logger,
		Assets: assets,
		Now:    func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) },
	})
	s, err := New(Config{
		Addr:     "127.0.0.1:0",
		Logger:   logger,
		Exporter: report.NewExporter(logger, renderer),
		Assets:   assets,
		Defaults: simulation.DefaultInput(),
	})
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func formValues(in simulation.Input) url.Values {
	form := url.Values{}
	for k, v := range in.Values() {
		form.Set(k, v)
	}
	return form
}

func TestNewRequiresExporter(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, branding.Assets{Stylesheet: "body { color: #123456; }"})

	res := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "text/html; charset=utf-8", res.Header().Get("Content-Type"))
	body := res.Body.String()
	assert.Contains(t, body, "<title>Simulador Comparativo Inbra</title>")
	assert.NotContains(t, body, report.ReportTitle)
	assert.Contains(t, body, "body { color: #123456; }")
	assert.Contains(t, body, `name="days"`)
	assert.Contains(t, body, "Informe a duração do tratamento")
	assert.Contains(t, body, `value="30"`)
	assert.NotContains(t, body, "<img")
}

func TestIndexPrefillFromQuery(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	res := do(t, s, httptest.NewRequest(http.MethodGet, "/?days=45", nil))

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `value="45"`)
}

func TestIndexWithLogo(t *testing.T) {
	logo := []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")
	s := newTestServer(t, branding.Assets{Logo: logo})

	res := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, res.Body.String(), `src="data:image/gif;base64,`)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	res := do(t, s, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = do(t, s, httptest.NewRequest(http.MethodGet, "/simulate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, res.Code)
}

func TestSimulateForm(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	form := formValues(scenarioA())
	form.Set(simulation.KeyLivePricePerKg, "12,00")
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := do(t, s, req)

	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, "Ganho líquido por animal (R$)")
	assert.Contains(t, body, "R$ 0,16")
	assert.Contains(t, body, "Em 30 dias")
	assert.Contains(t, body, "/report?")
	assert.Contains(t, body, "animal_count=100")
}

func TestSimulateFormInvalid(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	form := formValues(scenarioA())
	form.Set(simulation.KeyDays, "0")
	form.Set(simulation.KeyAnimalCount, "abc")
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := do(t, s, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, "Corrija os campos destacados.")
	assert.Equal(t, 2, strings.Count(body, `class="field invalid"`))
	assert.Contains(t, body, `value="abc"`)
}

func TestSimulateFormRejectsOverflow(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	form := formValues(scenarioA())
	form.Set(simulation.KeyLivePricePerKg, "1e400")
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := do(t, s, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	body := res.Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="field invalid"`))
	assert.Contains(t, body, `value="1e400"`)

	res = do(t, s, httptest.NewRequest(http.MethodGet, "/report?"+form.Encode(), nil))
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

// failingWriter records headers and refuses every body write.
type failingWriter struct {
	header   http.Header
	statuses []int
	writes   int
}

func (w *failingWriter) Header() http.Header { return w.header }

func (w *failingWriter) WriteHeader(status int) { w.statuses = append(w.statuses, status) }

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("connection reset")
}

func TestRenderPageWriteFailure(t *testing.T) {
	s := newTestServer(t, branding.Assets{})
	w := &failingWriter{header: http.Header{}}

	s.renderPage(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "index.html", pageView{
		Fields: formFields(simulation.DefaultInput().Values(), nil),
	})

	assert.Equal(t, []int{http.StatusOK}, w.statuses)
	assert.Equal(t, 1, w.writes)
	assert.Equal(t, "text/html; charset=utf-8", w.header.Get("Content-Type"))
}

func TestRenderPageTemplateFailure(t *testing.T) {
	s := newTestServer(t, branding.Assets{})
	rec := httptest.NewRecorder()

	s.renderPage(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing.html", pageView{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to render page"}`, rec.Body.String())
}

func TestReportDownload(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	res := do(t, s, httptest.NewRequest(http.MethodGet, "/report?"+formValues(scenarioA()).Encode(), nil))

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/pdf", res.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=sim_inbra_pasto_30d.pdf", res.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(res.Body.Bytes(), []byte("%PDF")))
}

func TestReportOtherFormats(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	query := formValues(scenarioA())
	query.Set("format", "csv")
	res := do(t, s, httptest.NewRequest(http.MethodGet, "/report?"+query.Encode(), nil))

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "text/csv", res.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=sim_inbra_pasto_30d.csv", res.Header().Get("Content-Disposition"))
	assert.Contains(t, res.Body.String(), "field,value\n")
	assert.Contains(t, res.Body.String(), "\nreturn_multiple,")

	query.Set("format", "xml")
	res = do(t, s, httptest.NewRequest(http.MethodGet, "/report?"+query.Encode(), nil))
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestReportInvalidQuery(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	res := do(t, s, httptest.NewRequest(http.MethodGet, "/report?days=10", nil))

	assert.Equal(t, http.StatusBadRequest, res.Code)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.Contains(t, body.Fields, simulation.KeyLivePricePerKg)
	assert.NotContains(t, body.Fields, simulation.KeyDays)
}

func TestAPISimulate(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	res := do(t, s, httptest.NewRequest(http.MethodPost, "/api/simulate", jsonBody(t, scenarioA())))

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/json", res.Header().Get("Content-Type"))

	var body SimulateResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, scenarioA(), body.Input)
	assert.InDelta(t, 13.333333, body.Result.BreakEvenGainG, 1e-6)
	assert.InDelta(t, 49.2, body.Result.NetGainPerAnimal, 1e-9)
	assert.InDelta(t, 4920, body.Result.LotNetGain, 1e-9)
	assert.InDelta(t, 11.25, body.Result.ReturnMultiple, 1e-9)
	assert.Contains(t, body.Interpretation, "Em 30 dias")
}

func TestAPISimulateErrors(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"days":`},
		{"unknown field", `{"days":30,"colour":"red"}`},
		{"wrong type", `{"days":"thirty"}`},
		{"below minimum", `{"days":0,"live_price_per_kg":1,"animal_count":1,"standard_price_per_kg":1,"inbeef_price_per_kg":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, s, httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, res.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAPIReport(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	res := do(t, s, httptest.NewRequest(http.MethodPost, "/api/report", jsonBody(t, scenarioA())))

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/pdf", res.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(res.Body.Bytes(), []byte("%PDF")))

	res = do(t, s, httptest.NewRequest(http.MethodPost, "/api/report?format=yaml", jsonBody(t, scenarioA())))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/yaml", res.Header().Get("Content-Type"))
	assert.Contains(t, res.Body.String(), "return_multiple: 11.2")
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t, branding.Assets{})

	res := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"status":"ok"}`, res.Body.String())
	assert.NotEmpty(t, res.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	res = do(t, s, req)
	assert.Equal(t, "abc-123", res.Header().Get(RequestIDHeader))
}

func TestRecoverMiddleware(t *testing.T) {
	h := recoverMiddleware(zaptest.NewLogger(t), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestServeGracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newTestServer(t, branding.Assets{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	res, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
