package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"leadhub/config"
	"leadhub/models"
	"leadhub/routes"
	"leadhub/utils"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = config.Config{
		Environment:    "test",
		JWTSecret:      "test-secret",
		RateLimitLogin: 1000,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateDB(db))
	config.DB = db

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerOrganiser signs up an organiser and returns an access token.
func registerOrganiser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, resp, &auth)
	require.NotEmpty(t, auth.AccessToken)
	return auth.AccessToken
}

// createAgent provisions an agent through the API and returns the agent row
// id plus a token minted for the agent's user.
func createAgent(t *testing.T, app *fiber.App, db *gorm.DB, organiserToken, username string) (uint, string) {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/agents", organiserToken, fiber.Map{
		"username":   username,
		"email":      username + "@example.com",
		"first_name": "Agent",
		"last_name":  "Smith",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	decodeBody(t, resp, &created)
	require.NotZero(t, created.Data.ID)

	// The initial credential is random and never surfaced, so agent tokens
	// are minted directly.
	var agentUser models.User
	require.NoError(t, db.Where("username = ?", username).First(&agentUser).Error)
	token, _, err := utils.GenerateJWTToken(&agentUser)
	require.NoError(t, err)

	return created.Data.ID, token
}

func createLead(t *testing.T, app *fiber.App, token string, body fiber.Map) uint {
	t.Helper()

	if _, ok := body["first_name"]; !ok {
		body["first_name"] = "Jane"
	}
	if _, ok := body["last_name"]; !ok {
		body["last_name"] = "Doe"
	}
	if _, ok := body["phone_number"]; !ok {
		body["phone_number"] = "+1555000"
	}
	if _, ok := body["email"]; !ok {
		body["email"] = "jane@example.com"
	}

	resp := doRequest(t, app, http.MethodPost, "/api/v1/leads", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	decodeBody(t, resp, &created)
	require.NotZero(t, created.Data.ID)
	return created.Data.ID
}

type leadListResponse struct {
	Data struct {
		Leads []struct {
			ID      uint  `json:"ID"`
			AgentID *uint `json:"agent_id"`
		} `json:"leads"`
		UnassignedLeads []struct {
			ID uint `json:"ID"`
		} `json:"unassigned_leads"`
	} `json:"data"`
}

func listLeads(t *testing.T, app *fiber.App, token string) leadListResponse {
	t.Helper()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/leads", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list leadListResponse
	decodeBody(t, resp, &list)
	return list
}

func TestRegisterCreatesWorkspace(t *testing.T) {
	app, db := setupTestApp(t)

	token := registerOrganiser(t, app, "founder")

	// The workspace profile exists the moment the account does
	var user models.User
	require.NoError(t, db.Where("username = ?", "founder").First(&user).Error)
	assert.Equal(t, models.RoleOrganiser, user.Role)

	var profileCount int64
	require.NoError(t, db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&profileCount).Error)
	assert.EqualValues(t, 1, profileCount)

	// A fresh workspace has no leads at all
	list := listLeads(t, app, token)
	assert.Empty(t, list.Data.Leads)
	assert.Empty(t, list.Data.UnassignedLeads)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app, _ := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")

	resp := doRequest(t, app, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/v1/leads", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestLeadEmailValidation(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")

	resp := doRequest(t, app, http.MethodPost, "/api/v1/leads", token, fiber.Map{
		"first_name":   "Jane",
		"last_name":    "Doe",
		"phone_number": "+1555000",
		"email":        "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Fields, "email")

	// Nothing was written
	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLeadMandatoryFields(t *testing.T) {
	app, _ := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")

	resp := doRequest(t, app, http.MethodPost, "/api/v1/leads", token, fiber.Map{
		"email": "jane@example.com",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Fields, "first_name")
	assert.Contains(t, body.Fields, "last_name")
	assert.Contains(t, body.Fields, "phone_number")
}

func TestUnassignedLeadVisibleInDetailNotList(t *testing.T) {
	app, _ := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")

	leadID := createLead(t, app, token, fiber.Map{})

	// Excluded from the primary list, present in the unassigned sublist
	list := listLeads(t, app, token)
	assert.Empty(t, list.Data.Leads)
	require.Len(t, list.Data.UnassignedLeads, 1)
	assert.Equal(t, leadID, list.Data.UnassignedLeads[0].ID)

	// The detail scope is broader than the list scope on purpose
	resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/v1/leads/%d", leadID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCrossWorkspaceLeadInvisible(t *testing.T) {
	app, _ := setupTestApp(t)
	tokenA := registerOrganiser(t, app, "alice")
	tokenB := registerOrganiser(t, app, "bob")

	leadID := createLead(t, app, tokenA, fiber.Map{})

	// Another organiser cannot tell the lead exists
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp := doRequest(t, app, method, fmt.Sprintf("/api/v1/leads/%d", leadID), tokenB, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	}

	list := listLeads(t, app, tokenB)
	assert.Empty(t, list.Data.Leads)
	assert.Empty(t, list.Data.UnassignedLeads)
}

func TestAgentListScopedToWorkspace(t *testing.T) {
	app, db := setupTestApp(t)
	tokenA := registerOrganiser(t, app, "alice")
	tokenB := registerOrganiser(t, app, "bob")

	agentID, _ := createAgent(t, app, db, tokenA, "agentuser")

	var agents struct {
		Data []struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}

	resp := doRequest(t, app, http.MethodGet, "/api/v1/agents", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &agents)
	require.Len(t, agents.Data, 1)
	assert.Equal(t, agentID, agents.Data[0].ID)

	// The unrelated organiser's list does not include it
	resp = doRequest(t, app, http.MethodGet, "/api/v1/agents", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &agents)
	assert.Empty(t, agents.Data)
}

func TestAssignAgentToLead(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")
	agentID, agentToken := createAgent(t, app, db, token, "agentuser")
	leadID := createLead(t, app, token, fiber.Map{})

	resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/v1/leads/%d/assign-agent", leadID), token, fiber.Map{
		"agent_id": agentID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The lead left the unassigned pool and entered the assigned list
	list := listLeads(t, app, token)
	require.Len(t, list.Data.Leads, 1)
	assert.Empty(t, list.Data.UnassignedLeads)
	require.NotNil(t, list.Data.Leads[0].AgentID)
	assert.Equal(t, agentID, *list.Data.Leads[0].AgentID)

	// And it now shows up in the agent's own scoped list
	agentList := listLeads(t, app, agentToken)
	require.Len(t, agentList.Data.Leads, 1)
	assert.Equal(t, leadID, agentList.Data.Leads[0].ID)
}

func TestAssignAgentRejectsCrossWorkspaceAgent(t *testing.T) {
	app, db := setupTestApp(t)
	tokenA := registerOrganiser(t, app, "alice")
	tokenB := registerOrganiser(t, app, "bob")
	foreignAgentID, _ := createAgent(t, app, db, tokenB, "bobsagent")
	leadID := createLead(t, app, tokenA, fiber.Map{})

	resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/v1/leads/%d/assign-agent", leadID), tokenA, fiber.Map{
		"agent_id": foreignAgentID,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Fields, "agent")
}

func TestAgentRoleDenials(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")
	agentID, agentToken := createAgent(t, app, db, token, "agentuser")
	leadID := createLead(t, app, token, fiber.Map{})
	resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/v1/leads/%d/assign-agent", leadID), token, fiber.Map{
		"agent_id": agentID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	denied := []struct {
		method string
		path   string
		body   fiber.Map
	}{
		{http.MethodPost, "/api/v1/leads", fiber.Map{"first_name": "X", "last_name": "Y", "phone_number": "1", "email": "x@y.com"}},
		{http.MethodPut, fmt.Sprintf("/api/v1/leads/%d", leadID), fiber.Map{"first_name": "X", "last_name": "Y", "phone_number": "1", "email": "x@y.com"}},
		{http.MethodDelete, fmt.Sprintf("/api/v1/leads/%d", leadID), nil},
		{http.MethodPut, fmt.Sprintf("/api/v1/leads/%d/assign-agent", leadID), fiber.Map{"agent_id": agentID}},
		{http.MethodPost, "/api/v1/categories", fiber.Map{"name": "New"}},
		{http.MethodPost, "/api/v1/agents", fiber.Map{"username": "x", "email": "x@y.com", "first_name": "X", "last_name": "Y"}},
		{http.MethodGet, "/api/v1/agents", nil},
	}

	for _, tc := range denied {
		resp := doRequest(t, app, tc.method, tc.path, agentToken, tc.body)
		assert.Equalf(t, http.StatusForbidden, resp.StatusCode, "%s %s", tc.method, tc.path)
		resp.Body.Close()
	}

	// No rows were created or removed along the way
	var leadCount, categoryCount, agentCount int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&leadCount).Error)
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	require.NoError(t, db.Model(&models.Agent{}).Count(&agentCount).Error)
	assert.EqualValues(t, 1, leadCount)
	assert.EqualValues(t, 0, categoryCount)
	assert.EqualValues(t, 1, agentCount)

	// Reads that both roles share still work
	resp = doRequest(t, app, http.MethodGet, "/api/v1/categories", agentToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteAgentClearsLeadAssignments(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")
	agentID, _ := createAgent(t, app, db, token, "agentuser")

	leadIDs := make([]uint, 0, 2)
	for i := 0; i < 2; i++ {
		leadID := createLead(t, app, token, fiber.Map{"email": fmt.Sprintf("lead%d@example.com", i)})
		resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/v1/leads/%d/assign-agent", leadID), token, fiber.Map{
			"agent_id": agentID,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
		leadIDs = append(leadIDs, leadID)
	}

	resp := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/agents/%d", agentID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The leads survive, unassigned, and the agent's login is gone
	for _, leadID := range leadIDs {
		var lead models.Lead
		require.NoError(t, db.First(&lead, leadID).Error)
		assert.Nil(t, lead.AgentID)
	}

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "agentuser").Count(&userCount).Error)
	assert.Zero(t, userCount)

	list := listLeads(t, app, token)
	assert.Empty(t, list.Data.Leads)
	assert.Len(t, list.Data.UnassignedLeads, 2)
}

func TestCategoryLifecycle(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")

	resp := doRequest(t, app, http.MethodPost, "/api/v1/categories", token, fiber.Map{"name": "New"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	decodeBody(t, resp, &created)
	categoryID := created.Data.ID

	// Duplicate names within a workspace are rejected
	resp = doRequest(t, app, http.MethodPost, "/api/v1/categories", token, fiber.Map{"name": "New"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Fields, "name")

	leadID := createLead(t, app, token, fiber.Map{"category_id": categoryID})

	// The list reports live lead counts
	resp = doRequest(t, app, http.MethodGet, "/api/v1/categories", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Data struct {
			Categories []struct {
				ID    uint  `json:"ID"`
				Count int64 `json:"count"`
			} `json:"categories"`
			UncategorisedCount int64 `json:"uncategorised_count"`
		} `json:"data"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Data.Categories, 1)
	assert.EqualValues(t, 1, list.Data.Categories[0].Count)
	assert.EqualValues(t, 0, list.Data.UncategorisedCount)

	// Deleting the category orphans the lead instead of deleting it
	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", categoryID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var lead models.Lead
	require.NoError(t, db.First(&lead, leadID).Error)
	assert.Nil(t, lead.CategoryID)
}

func TestAssignedAgentMayRecategoriseLead(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")
	agentID, agentToken := createAgent(t, app, db, token, "agentuser")

	resp := doRequest(t, app, http.MethodPost, "/api/v1/categories", token, fiber.Map{"name": "Contacted"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	decodeBody(t, resp, &created)

	assignedLead := createLead(t, app, token, fiber.Map{"agent_id": agentID})
	otherLead := createLead(t, app, token, fiber.Map{"email": "other@example.com"})

	// The assigned agent may label its own lead
	resp = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/v1/leads/%d/category", assignedLead), agentToken, fiber.Map{
		"category_id": created.Data.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var lead models.Lead
	require.NoError(t, db.First(&lead, assignedLead).Error)
	require.NotNil(t, lead.CategoryID)
	assert.Equal(t, created.Data.ID, *lead.CategoryID)

	// A lead outside the agent's scope answers as missing
	resp = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/v1/leads/%d/category", otherLead), agentToken, fiber.Map{
		"category_id": created.Data.ID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUnassignedPlusAssignedEqualsTotal(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")
	agentA, tokenA := createAgent(t, app, db, token, "agenta")
	agentB, tokenB := createAgent(t, app, db, token, "agentb")

	assignments := []interface{}{agentA, agentA, agentB, nil, nil}
	for i, agentID := range assignments {
		body := fiber.Map{"email": fmt.Sprintf("lead%d@example.com", i)}
		if agentID != nil {
			body["agent_id"] = agentID
		}
		createLead(t, app, token, body)
	}

	organiserList := listLeads(t, app, token)
	perAgentTotal := len(listLeads(t, app, tokenA).Data.Leads) + len(listLeads(t, app, tokenB).Data.Leads)

	var total int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&total).Error)
	assert.EqualValues(t, total, len(organiserList.Data.UnassignedLeads)+perAgentTotal)
}

func TestLeadListStableOrder(t *testing.T) {
	app, _ := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")

	for i := 0; i < 3; i++ {
		createLead(t, app, token, fiber.Map{"email": fmt.Sprintf("lead%d@example.com", i)})
	}

	first := listLeads(t, app, token)
	second := listLeads(t, app, token)
	assert.Equal(t, first, second)
}

func TestUpdateLeadClearsAssignment(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")
	agentID, _ := createAgent(t, app, db, token, "agentuser")
	leadID := createLead(t, app, token, fiber.Map{"agent_id": agentID})

	// A full rewrite carrying no agent returns the lead to the unassigned
	// pool; the lead lifecycle must not dead-end on assignment
	resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/v1/leads/%d", leadID), token, fiber.Map{
		"first_name":   "Jane",
		"last_name":    "Doe",
		"phone_number": "+1555000",
		"email":        "jane@example.com",
		"agent_id":     nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var lead models.Lead
	require.NoError(t, db.First(&lead, leadID).Error)
	assert.Nil(t, lead.AgentID)

	list := listLeads(t, app, token)
	assert.Empty(t, list.Data.Leads)
	require.Len(t, list.Data.UnassignedLeads, 1)
	assert.Equal(t, leadID, list.Data.UnassignedLeads[0].ID)
}

func TestLeadNegativeAgeRejected(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")

	resp := doRequest(t, app, http.MethodPost, "/api/v1/leads", token, fiber.Map{
		"first_name":   "Jane",
		"last_name":    "Doe",
		"phone_number": "+1555000",
		"email":        "jane@example.com",
		"age":          -5,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Fields, "age")

	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterSurfacesStoreFailure(t *testing.T) {
	app, db := setupTestApp(t)

	// Break the store underneath the duplicate-account lookup
	require.NoError(t, db.Migrator().DropTable(&models.User{}))

	resp := doRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "founder",
		"email":    "founder@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// The lookup failure is reported as such, not misattributed to the
	// account insert
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Database error", body.Error)
}

func TestDashboardStats(t *testing.T) {
	app, db := setupTestApp(t)
	token := registerOrganiser(t, app, "founder")
	agentID, _ := createAgent(t, app, db, token, "agentuser")
	createLead(t, app, token, fiber.Map{"agent_id": agentID})
	createLead(t, app, token, fiber.Map{"email": "second@example.com"})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			TotalLeads      int64 `json:"total_leads"`
			AssignedLeads   int64 `json:"assigned_leads"`
			UnassignedLeads int64 `json:"unassigned_leads"`
			AgentCount      int64 `json:"agent_count"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.EqualValues(t, 2, body.Data.TotalLeads)
	assert.EqualValues(t, 1, body.Data.AssignedLeads)
	assert.EqualValues(t, 1, body.Data.UnassignedLeads)
	assert.EqualValues(t, 1, body.Data.AgentCount)
}
