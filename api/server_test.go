package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newTestServer() *Server {
	return NewServer(zap.NewNop())
}

func postJSON(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGenerate_InClause(t *testing.T) {
	batch := 2
	rec := postJSON(t, newTestServer(), GenerateRequest{
		Template:         "DELETE FROM users WHERE id IN ({values});",
		Columns:          []string{"A", "B"},
		Rows:             [][]string{{"1", "Alice"}, {"2", "Bob"}, {"3", "Charlie"}},
		RowsPerStatement: &batch,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "in-clause", resp.Mode)
	assert.Equal(t, 3, resp.RowCount)
	assert.Equal(t, []string{
		"DELETE FROM users WHERE id IN ('1', '2');",
		"DELETE FROM users WHERE id IN ('3');",
	}, resp.Statements)
}

func TestGenerate_SingleRowWithStartRow(t *testing.T) {
	rec := postJSON(t, newTestServer(), GenerateRequest{
		Template: "INSERT INTO users (name) VALUES ('{value}');",
		Columns:  []string{"b"},
		Rows:     [][]string{{"id", "name"}, {"1", "O'Neil"}, {"2"}},
		StartRow: 2,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "single-row", resp.Mode)
	assert.Equal(t, []string{"INSERT INTO users (name) VALUES ('O''Neil');"}, resp.Statements)
}

func TestGenerate_Errors(t *testing.T) {
	zero := 0
	tests := []struct {
		name string
		req  GenerateRequest
	}{
		{"missing template", GenerateRequest{Columns: []string{"A"}, Rows: [][]string{{"1"}}}},
		{"missing columns", GenerateRequest{Template: "{value}", Rows: [][]string{{"1"}}}},
		{"bad column", GenerateRequest{Template: "{value}", Columns: []string{"1A"}, Rows: [][]string{{"1"}}}},
		{"no data", GenerateRequest{Template: "{value}", Columns: []string{"A"}}},
		{"zero batch", GenerateRequest{Template: "{values}", Columns: []string{"A"}, Rows: [][]string{{"1"}}, RowsPerStatement: &zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, newTestServer(), tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func workbookBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{{"id", "name"}, {1, "Alice"}, {2, "Bob"}}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload_Workbook(t *testing.T) {
	req := uploadRequest(t, "users.xlsx", workbookBytes(t), map[string]string{
		"columns":            "A,B",
		"template":           "INSERT INTO users (id, name) VALUES {@row};",
		"rows_per_statement": "10",
	})
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Sheet1", resp.Sheet)
	assert.Equal(t, "values-list", resp.Mode)
	assert.Equal(t, []string{"INSERT INTO users (id, name) VALUES ('1', 'Alice'), ('2', 'Bob');"}, resp.Statements)
}

func TestUpload_CSV(t *testing.T) {
	req := uploadRequest(t, "ids.csv", []byte("id\n7\n8\n"), map[string]string{
		"columns":  "A",
		"template": "SELECT {value};",
	})
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"SELECT 7;", "SELECT 8;"}, resp.Statements)
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"unknown sheet", map[string]string{"columns": "A", "template": "{value}", "sheet": "nope"}},
		{"bad start row", map[string]string{"columns": "A", "template": "{value}", "start_row": "x"}},
		{"bad skip flag", map[string]string{"columns": "A", "template": "{value}", "skip_empty": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer().Handler().ServeHTTP(rec, uploadRequest(t, "users.xlsx", workbookBytes(t), tt.fields))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpload_MissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("columns", "A"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
