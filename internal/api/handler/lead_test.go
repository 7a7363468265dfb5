package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/internal/model"
	"github.com/trendyreports/trendyreports/internal/store"
)

func setupLeadRouter(t *testing.T) (*LeadHandler, store.Store, func()) {
	s, cleanup := store.SetupTestDB(t)
	return NewLeadHandler(s), s, cleanup
}

func TestCreateLead(t *testing.T) {
	h, s, cleanup := setupLeadRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/leads", h.CreateLead)

	w := PerformRequest(r, CreateTestRequest("POST", "/leads", CreateLeadRequest{
		Name:            "Jordan Avery",
		Email:           "jordan.avery@example.com",
		Phone:           "555-0142",
		Message:         "What is my home worth?",
		PropertyAddress: "12 Alder Ct",
		Source:          "crestwood-falls-landing",
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := DecodeJSON(w)
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)

	lead, err := s.Lead().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "jordan.avery@example.com", lead.Email)
	assert.Equal(t, "crestwood-falls-landing", lead.Source)
}

func TestCreateLead_HoneypotNoRecord(t *testing.T) {
	h, s, cleanup := setupLeadRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/leads", h.CreateLead)

	w := PerformRequest(r, CreateTestRequest("POST", "/leads", CreateLeadRequest{
		Name:    "Totally Real Person",
		Email:   "bot@example.com",
		Website: "https://spam.example.com",
	}))
	// The bot still sees success
	require.Equal(t, http.StatusCreated, w.Code)

	resp := DecodeJSON(w)
	assert.Nil(t, resp["id"])

	count, err := s.Lead().CountAll()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCreateLead_InvalidEmail(t *testing.T) {
	h, _, cleanup := setupLeadRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/leads", h.CreateLead)

	w := PerformRequest(r, CreateTestRequest("POST", "/leads", CreateLeadRequest{
		Name:  "Jordan Avery",
		Email: "not-an-email",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLead_MissingName(t *testing.T) {
	h, _, cleanup := setupLeadRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.POST("/leads", h.CreateLead)

	w := PerformRequest(r, CreateTestRequest("POST", "/leads", CreateLeadRequest{
		Email: "jordan.avery@example.com",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLeads_SourceFilter(t *testing.T) {
	h, s, cleanup := setupLeadRouter(t)
	defer cleanup()

	store.CreateTestLead(t, s)
	store.CreateTestLead(t, s, func(l *model.Lead) {
		l.Email = "casey.bright@example.com"
		l.Source = "alder-ridge-landing"
	})

	r := SetupTestRouter()
	r.GET("/leads", h.ListLeads)

	w := PerformRequest(r, CreateTestRequest("GET", "/leads?source=alder-ridge-landing", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := DecodeJSON(w)
	assert.EqualValues(t, 1, resp["total"])
}

func TestGetLead_NotFound(t *testing.T) {
	h, _, cleanup := setupLeadRouter(t)
	defer cleanup()

	r := SetupTestRouter()
	r.GET("/leads/:id", h.GetLead)

	w := PerformRequest(r, CreateTestRequest("GET", "/leads/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLead(t *testing.T) {
	h, s, cleanup := setupLeadRouter(t)
	defer cleanup()

	lead := store.CreateTestLead(t, s)

	r := SetupTestRouter()
	r.DELETE("/leads/:id", h.DeleteLead)

	w := PerformRequest(r, CreateTestRequest("DELETE", "/leads/"+lead.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	_, err := s.Lead().GetByID(lead.ID)
	assert.Error(t, err)
}
