package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/config"
	"planboard/internal/model"
	"planboard/internal/service/store"
	"planboard/internal/solver"
	"planboard/internal/strategy"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	cfg := config.DefaultConfig()
	sv, err := solver.New(cfg.Ceilings())
	require.NoError(t, err)

	h := NewHandler(st, strategy.NewOrchestrator(st, sv), cfg, zerolog.Nop())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetStatus_Initial(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(model.MonthCount), body["monthCount"])
	assert.Equal(t, float64(0), body["solvedCount"])
	assert.Equal(t, false, body["ahpComputed"])
	assert.Len(t, body["strategies"], len(model.StrategyKeys))
}

func TestGetDataset(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/dataset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body, "dataset")
	assert.Len(t, body["monthLabels"], model.MonthCount)
}

func TestAdjustDataset(t *testing.T) {
	router, st := newTestRouter(t)
	before := st.GetDataset().Turnover[2]

	w := doJSON(t, router, http.MethodPost, "/api/dataset/adjust", AdjustRequest{
		Series: model.SeriesTurnover, Month: 2, Direction: 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, before+model.EditStepDefault, body["value"])
	assert.Equal(t, before+model.EditStepDefault, st.GetDataset().Turnover[2])
}

func TestAdjustDataset_BadRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/dataset/adjust", AdjustRequest{
		Series: model.SeriesTurnover, Month: 99, Direction: 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/dataset/adjust", gin.H{"series": "turnover"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetDataset(t *testing.T) {
	router, st := newTestRouter(t)

	_, err := st.AdjustSeries(model.SeriesCost, 0, 1)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/dataset/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.DefaultDataset(), st.GetDataset())
}

func postCSV(t *testing.T, router *gin.Engine, csvText string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "plan.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvText))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestImport_CSV(t *testing.T) {
	router, st := newTestRouter(t)

	rows := []string{"orders,cost"}
	for i := 0; i < model.MonthCount; i++ {
		rows = append(rows, "300,60")
	}
	w := postCSV(t, router, strings.Join(rows, "\n"))
	require.Equal(t, http.StatusOK, w.Code)

	got := st.GetDataset()
	assert.Equal(t, 300.0, got.Orders[11])
	assert.Equal(t, 60.0, got.Cost[0])
}

func TestImport_BadHeaderLeavesDatasetUntouched(t *testing.T) {
	router, st := newTestRouter(t)

	w := postCSV(t, router, "foo,bar\n1,2\n")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.DefaultDataset(), st.GetDataset())
}

func TestImport_MissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/import", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatrixRoutes(t *testing.T) {
	router, st := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/matrix", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["criteria"], model.CriteriaCount)
	assert.Nil(t, body["ahp"])

	w = doJSON(t, router, http.MethodPatch, "/api/matrix", MatrixUpdateRequest{Row: 0, Col: 1, Value: 4})
	require.Equal(t, http.StatusOK, w.Code)
	m := st.GetMatrix()
	assert.Equal(t, 4.0, m.Cells[0][1])
	assert.InDelta(t, 0.25, m.Cells[1][0], 1e-12)

	w = doJSON(t, router, http.MethodPatch, "/api/matrix", MatrixUpdateRequest{Row: 9, Col: 0, Value: 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComputeAHP(t *testing.T) {
	router, st := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ahp", nil)
	require.Equal(t, http.StatusOK, w.Code)

	snapshot := st.GetAHP()
	require.NotNil(t, snapshot)
	require.Len(t, snapshot.Weights, model.CriteriaCount)

	sum := 0.0
	for _, v := range snapshot.Weights {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	// 内置默认矩阵的CR略超阈值
	assert.False(t, snapshot.Consistent)
	assert.False(t, snapshot.Fallback)
}

func TestOptimizeAndResults(t *testing.T) {
	router, st := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/optimize", OptimizeRequest{Strategy: model.StrategyTurnover})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, st.GetResult(model.StrategyTurnover))

	w = doJSON(t, router, http.MethodPost, "/api/optimize", OptimizeRequest{Strategy: "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/results", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["results"], 1)
}

func TestGetPareto(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, key := range model.StrategyKeys {
		w := doJSON(t, router, http.MethodPost, "/api/optimize", OptimizeRequest{Strategy: key})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/pareto", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["points"], len(model.StrategyKeys))
}

func TestExport_RequiresSolvedStrategy(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/export", ExportRequest{Strategy: model.StrategyCost})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport_CSVDownloadRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	_, err := config.EnsureDataDir(config.DefaultConfig())
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/optimize", OptimizeRequest{Strategy: model.StrategyTurnover})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/export", ExportRequest{Strategy: model.StrategyTurnover, Format: "csv"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(t, router, http.MethodGet, "/api/export/download/"+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "PlannedProduction")
}

func TestDownloadExport_UnknownToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/export/download/no-such-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExport_BadFormat(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/export", ExportRequest{Strategy: model.StrategyTurnover, Format: "pdf"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
