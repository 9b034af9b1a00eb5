package leads

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/eladmalka/gal-fridman-malka-website/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func sqlmockResult(rowsAffected int64) driver.Result {
	return sqlmock.NewResult(0, rowsAffected)
}

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func validLeadData() map[string]string {
	return map[string]string{
		"name":          "Dana Levi",
		"phone":         "0521234567",
		"email":         "dana@example.com",
		"status":        "married",
		"goals":         "Improve communication at home",
		"contactMethod": "whatsapp",
	}
}

func postLead(t *testing.T, data map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	r := testutils.SetupTestRouter()
	r.POST("/api/leads", CreateLead)

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest(http.MethodPost, "/api/leads", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateLead_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "leads" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	resp := postLead(t, validLeadData())

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Lead submitted successfully", respBody["message"])

	lead, ok := respBody["lead"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, false, lead["seen"])
	assert.Nil(t, lead["deletedAt"])
}

func TestCreateLead_PhoneTooShort(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	data := validLeadData()
	data["phone"] = "052123456"

	resp := postLead(t, data)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'Phone' failed")

	// No row must be created on a validation reject
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLead_GoalsTooShort(t *testing.T) {
	data := validLeadData()
	data["goals"] = "hi"

	resp := postLead(t, data)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'Goals' failed")
}

func TestCreateLead_UnknownStatus(t *testing.T) {
	data := validLeadData()
	data["status"] = "foo"

	resp := postLead(t, data)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'Status' failed")
}

func TestCreateLead_UnknownContactMethod(t *testing.T) {
	data := validLeadData()
	data["contactMethod"] = "pigeon"

	resp := postLead(t, data)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'ContactMethod' failed")
}

func leadColumns() []string {
	return []string{"id", "name", "phone", "email", "status", "goals", "contact_method", "seen", "deleted_at", "created_at"}
}

func TestGetActiveLeads_ExcludesTrashed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "leads" WHERE deleted_at IS NULL ORDER BY created_at DESC`).
		WillReturnRows(mock.NewRows(leadColumns()).
			AddRow(2, "Noa", "0521111111", "noa@example.com", "single", "Finding a partner", "phone", false, nil, now).
			AddRow(1, "Dana", "0522222222", "dana@example.com", "married", "Better communication", "whatsapp", true, nil, now.Add(-time.Hour)))

	r := testutils.SetupTestRouter()
	r.GET("/api/admin/leads", GetActiveLeads)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 2)
	assert.Equal(t, float64(2), respBody[0]["id"])
	assert.Equal(t, float64(1), respBody[1]["id"])
}

func TestGetTrashedLeads_ComputesDaysUntilPurge(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	deletedRecently := now.Add(-24 * time.Hour)
	deletedLongAgo := now.Add(-40 * 24 * time.Hour)
	mock.ExpectQuery(`SELECT \* FROM "leads" WHERE deleted_at IS NOT NULL ORDER BY deleted_at DESC`).
		WillReturnRows(mock.NewRows(leadColumns()).
			AddRow(3, "Noa", "0521111111", "noa@example.com", "single", "Finding a partner", "phone", true, deletedRecently, now.Add(-48*time.Hour)).
			AddRow(4, "Yael", "0523333333", "yael@example.com", "other", "Family harmony", "phone", true, deletedLongAgo, now.Add(-60*24*time.Hour)))

	r := testutils.SetupTestRouter()
	r.GET("/api/admin/leads/trash", GetTrashedLeads)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/leads/trash", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 2)
	assert.Equal(t, float64(29), respBody[0]["daysUntilPurge"])
	// Past the retention window the countdown floors at zero
	assert.Equal(t, float64(0), respBody[1]["daysUntilPurge"])
}

func TestGetUnseenCount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "leads" WHERE seen = \$1 AND deleted_at IS NULL`).
		WithArgs(false).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(3))

	r := testutils.SetupTestRouter()
	r.GET("/api/admin/leads/unseen-count", GetUnseenCount)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/leads/unseen-count", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(3), respBody["count"])
}

func TestMarkLeadsSeen(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "leads" SET "seen"=\$1 WHERE id IN \(\$2,\$3\)`).
		WillReturnResult(sqlmockResult(2))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/leads/seen", MarkLeadsSeen)

	jsonData, _ := json.Marshal(map[string]interface{}{"ids": []uint{1, 2}})
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/leads/seen", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkLeadsSeen_EmptyIsNoop(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/leads/seen", MarkLeadsSeen)

	jsonData, _ := json.Marshal(map[string]interface{}{"ids": []uint{}})
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/leads/seen", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrashLead_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "leads" SET "deleted_at"=\$1 WHERE id = \$2 AND deleted_at IS NULL`).
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/leads/:id", TrashLead)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/leads/7", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestTrashLead_AlreadyTrashed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Trashing again matches no active row and is reported as not found
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "leads" SET "deleted_at"=\$1 WHERE id = \$2 AND deleted_at IS NULL`).
		WillReturnResult(sqlmockResult(0))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/leads/:id", TrashLead)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/leads/7", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRestoreLead_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "leads" SET "deleted_at"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/leads/:id/restore", RestoreLead)

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/leads/7/restore", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestPurgeLead_RefusesActiveLead(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// The guard matches trashed rows only, so an active lead comes back
	// as zero rows and nothing is deleted
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "leads" WHERE id = \$1 AND deleted_at IS NOT NULL`).
		WillReturnResult(sqlmockResult(0))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/leads/:id/permanent", PurgeLead)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/leads/7/permanent", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPurgeLead_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "leads" WHERE id = \$1 AND deleted_at IS NOT NULL`).
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/leads/:id/permanent", PurgeLead)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/leads/7/permanent", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestPurgeAllTrash_ReturnsCount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "leads" WHERE deleted_at IS NOT NULL`).
		WillReturnResult(sqlmockResult(4))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/leads/trash", PurgeAllTrash)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/leads/trash", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(4), respBody["count"])
}

func TestRestoreAllTrash_ReturnsCount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "leads" SET "deleted_at"=\$1 WHERE deleted_at IS NOT NULL`).
		WillReturnResult(sqlmockResult(2))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/leads/trash/restore-all", RestoreAllTrash)

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/leads/trash/restore-all", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(2), respBody["count"])
}
