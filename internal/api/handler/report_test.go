package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/export"
	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/render"
	"github.com/trendyreports/trendyreports/internal/store"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{Level: "error", Format: "text"})
	defer logger.Sync()
	m.Run()
}

func setupReportRouter(t *testing.T) (*ReportHandler, store.Store, func()) {
	s, cleanup := store.SetupTestDB(t)
	h := NewReportHandler(render.New(), export.NewDefaultManager(), s)
	return h, s, cleanup
}

func snapshotPayload() map[string]interface{} {
	return map[string]interface{}{
		"result_json": map[string]interface{}{
			"city":          "Crestwood Falls",
			"lookback_days": 30,
			"counts":        map[string]interface{}{"Active": 150, "Pending": 25, "Closed": 75},
			"metrics": map[string]interface{}{
				"median_list_price":  749000,
				"median_close_price": 732000,
				"avg_dom":            24,
			},
		},
	}
}

func TestCreateRender_DefaultTemplate(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/renders", h.CreateRender)

	payload, _ := json.Marshal(snapshotPayload())
	req := CreateTestRequest("POST", "/renders", map[string]interface{}{
		"report_type": consts.ReportTypeMarketSnapshot,
		"title":       "June Snapshot",
		"payload":     json.RawMessage(payload),
	})
	w := PerformRequest(r, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := DecodeJSON(w)
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "rendered", resp["status"])

	html, _ := resp["html"].(string)
	assert.Contains(t, html, "Crestwood Falls")
	assert.Contains(t, html, "$732,000")
	assert.NotContains(t, html, "{{")

	// Record persisted with rendered state
	rpt, err := s.Report().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.ReportStatusRendered, rpt.Status)
	assert.Equal(t, len(html), rpt.HTMLBytes)
	assert.NotNil(t, rpt.RenderedAt)
	// Seeded default template was used
	assert.NotEmpty(t, rpt.TemplateID)
}

func TestCreateRender_BareShapePayload(t *testing.T) {
	h, _, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/renders", h.CreateRender)

	payload, _ := json.Marshal(map[string]interface{}{
		"city":          "Crestwood Falls",
		"lookback_days": 30,
		"counts":        map[string]interface{}{"Active": 10, "Pending": 2, "Closed": 5},
	})
	req := CreateTestRequest("POST", "/renders", map[string]interface{}{
		"report_type": consts.ReportTypeMarketSnapshot,
		"payload":     json.RawMessage(payload),
	})
	w := PerformRequest(r, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := DecodeJSON(w)
	assert.Equal(t, "Crestwood Falls", resp["city"])
}

func TestCreateRender_InlineTemplate(t *testing.T) {
	h, _, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/renders", h.CreateRender)

	payload, _ := json.Marshal(snapshotPayload())
	req := CreateTestRequest("POST", "/renders", map[string]interface{}{
		"report_type":   consts.ReportTypeMarketSnapshot,
		"template_html": "<h1>{{market_name}}</h1><p>{{median_price}}</p>",
		"payload":       json.RawMessage(payload),
	})
	w := PerformRequest(r, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := DecodeJSON(w)
	assert.Equal(t, "<h1>Crestwood Falls</h1><p>$732,000</p>", resp["html"])
	// Inline template leaves no template reference
	rpt := resp["id"].(string)
	assert.NotEmpty(t, rpt)
}

func TestCreateRender_StoredBrand(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	brand := store.CreateTestBrand(t, s, func(b *model.Brand) {
		b.DisplayName = "Summit Realty"
		b.WebsiteURL = "https://summit.example.com"
	})

	r := SetupTestRouter()
	r.POST("/renders", h.CreateRender)

	payload, _ := json.Marshal(snapshotPayload())
	req := CreateTestRequest("POST", "/renders", map[string]interface{}{
		"report_type":   consts.ReportTypeMarketSnapshot,
		"template_html": "<p>{{brand_name}}</p>",
		"brand_id":      brand.ID,
		"payload":       json.RawMessage(payload),
	})
	w := PerformRequest(r, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := DecodeJSON(w)
	assert.Equal(t, "<p>Summit Realty</p>", resp["html"])
}

func TestCreateRender_UnknownReportType(t *testing.T) {
	h, _, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/renders", h.CreateRender)

	payload, _ := json.Marshal(snapshotPayload())
	req := CreateTestRequest("POST", "/renders", map[string]interface{}{
		"report_type": "weekly_digest",
		"payload":     json.RawMessage(payload),
	})
	w := PerformRequest(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := DecodeJSON(w)
	assert.Contains(t, resp["message"], "weekly_digest")
}

func TestCreateRender_TemplateNotFound(t *testing.T) {
	h, _, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/renders", h.CreateRender)

	payload, _ := json.Marshal(snapshotPayload())
	req := CreateTestRequest("POST", "/renders", map[string]interface{}{
		"report_type": consts.ReportTypeMarketSnapshot,
		"template_id": "missing-template-id",
		"payload":     json.RawMessage(payload),
	})
	w := PerformRequest(r, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRender_InvalidPayload(t *testing.T) {
	h, _, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/renders", h.CreateRender)

	req := CreateTestRequest("POST", "/renders", map[string]interface{}{
		"report_type": consts.ReportTypeMarketSnapshot,
		"payload":     json.RawMessage(`"not an object"`),
	})
	w := PerformRequest(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReports_Filters(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	store.CreateTestReport(t, s)
	store.CreateTestReport(t, s, func(r *model.Report) {
		r.ReportType = consts.ReportTypeInventory
	})

	r := SetupTestRouter()
	r.GET("/reports", h.ListReports)

	w := PerformRequest(r, CreateTestRequest("GET", "/reports?report_type=inventory", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := DecodeJSON(w)
	assert.EqualValues(t, 1, resp["total"])
}

func TestGetReport_NotFound(t *testing.T) {
	h, _, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.GET("/reports/:id", h.GetReport)

	w := PerformRequest(r, CreateTestRequest("GET", "/reports/no-such-id", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReport(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	rpt := store.CreateTestReport(t, s)

	r := SetupTestRouter()
	r.DELETE("/reports/:id", h.DeleteReport)

	w := PerformRequest(r, CreateTestRequest("DELETE", "/reports/"+rpt.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	_, err := s.Report().GetByID(rpt.ID)
	assert.Error(t, err)
}

func TestExportReport_HTML(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	rpt := store.CreateTestReport(t, s, func(r *model.Report) {
		r.HTML = "<html><body>Crestwood Falls</body></html>"
		r.Status = model.ReportStatusRendered
		r.Title = "Crestwood Falls Market Snapshot"
	})

	r := SetupTestRouter()
	r.GET("/reports/:id/export", h.ExportReport)

	w := PerformRequest(r, CreateTestRequest("GET", "/reports/"+rpt.ID+"/export?format=html", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "<html><body>Crestwood Falls</body></html>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Crestwood-Falls-Market-Snapshot.html")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestExportReport_NotRendered(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	rpt := store.CreateTestReport(t, s)

	r := SetupTestRouter()
	r.GET("/reports/:id/export", h.ExportReport)

	w := PerformRequest(r, CreateTestRequest("GET", "/reports/"+rpt.ID+"/export", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportReport_UnsupportedFormat(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	rpt := store.CreateTestReport(t, s)

	r := SetupTestRouter()
	r.GET("/reports/:id/export", h.ExportReport)

	w := PerformRequest(r, CreateTestRequest("GET", "/reports/"+rpt.ID+"/export?format=docx", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReportTypes(t *testing.T) {
	h, _, cleanup := setupReportRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.GET("/report-types", h.GetReportTypes)

	w := PerformRequest(r, CreateTestRequest("GET", "/report-types", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := DecodeJSON(w)
	data, _ := resp["data"].([]interface{})
	require.Len(t, data, len(consts.ReportTypes))

	first, _ := data[0].(map[string]interface{})
	assert.Equal(t, consts.ReportTypeMarketSnapshot, first["id"])
	assert.Equal(t, "Market Snapshot", first["name"])
}

func TestGetCities(t *testing.T) {
	h, s, cleanup := setupReportRouter(t)
	defer cleanup()

	store.CreateTestReport(t, s)
	store.CreateTestReport(t, s, func(r *model.Report) { r.City = "Alder Ridge" })

	r := SetupTestRouter()
	r.GET("/reports/cities", h.GetCities)

	w := PerformRequest(r, CreateTestRequest("GET", "/reports/cities", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := DecodeJSON(w)
	data, _ := resp["data"].([]interface{})
	assert.Len(t, data, 2)
}
