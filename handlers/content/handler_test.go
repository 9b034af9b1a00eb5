package content

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

	"github.com/eladmalka/gal-fridman-malka-website/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func sqlmockResult(rowsAffected int64) driver.Result {
	return sqlmock.NewResult(0, rowsAffected)
}

func getContent(r http.Handler) map[string]string {
	req, _ := http.NewRequest(http.MethodGet, "/api/content", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	return body
}

func TestGetContent_DefaultsWhenNothingStored(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "site_content"`).
		WillReturnRows(mock.NewRows([]string{"id", "key", "value"}))

	r := testutils.SetupTestRouter()
	r.GET("/api/content", GetContent)

	body := getContent(r)

	assert.Equal(t, DefaultContent["hero.badge"], body["hero.badge"])
	assert.Equal(t, DefaultContent["contact.title"], body["contact.title"])
	assert.Len(t, body, len(DefaultContent))
}

func TestGetContent_OverrideWinsOnlyForItsKey(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "site_content"`).
		WillReturnRows(mock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, "hero.badge", "X"))

	r := testutils.SetupTestRouter()
	r.GET("/api/content", GetContent)

	body := getContent(r)

	assert.Equal(t, "X", body["hero.badge"])
	// Every other key keeps its default
	assert.Equal(t, DefaultContent["hero.titleMain"], body["hero.titleMain"])
	assert.Equal(t, DefaultContent["contact.subtitle"], body["contact.subtitle"])
}

func TestGetContent_UnknownStoredKeyCarriedThrough(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "site_content"`).
		WillReturnRows(mock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, "future.section.title", "coming soon"))

	r := testutils.SetupTestRouter()
	r.GET("/api/content", GetContent)

	body := getContent(r)

	assert.Equal(t, "coming soon", body["future.section.title"])
	assert.Len(t, body, len(DefaultContent)+1)
}

func TestSetContent_UpdatesExistingKey(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "site_content" SET "value"=\$1 WHERE key = \$2`).
		WithArgs("X", "hero.badge").
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/api/content", SetContent)

	jsonData, _ := json.Marshal(map[string]string{"hero.badge": "X"})
	req, _ := http.NewRequest(http.MethodPut, "/api/content", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetContent_InsertsNewKey(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "site_content" SET "value"=\$1 WHERE key = \$2`).
		WillReturnResult(sqlmockResult(0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "site_content" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/api/content", SetContent)

	jsonData, _ := json.Marshal(map[string]string{"hero.badge": "X"})
	req, _ := http.NewRequest(http.MethodPut, "/api/content", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetContent_RejectsNonObjectBody(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.PUT("/api/content", SetContent)

	req, _ := http.NewRequest(http.MethodPut, "/api/content", bytes.NewBufferString(`["not","a","map"]`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
