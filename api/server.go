package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pixperk/sheetsql/internal/config"
	"github.com/pixperk/sheetsql/internal/etl"
	"github.com/pixperk/sheetsql/internal/sheet"
	"github.com/pixperk/sheetsql/internal/sqlgen"
	"go.uber.org/zap"
)

const (
	Version = "1.0.0"

	maxJSONBody   = 16 << 20
	maxUploadBody = 64 << 20
)

var errBadRequest = errors.New("bad request")

type Server struct {
	logger *zap.Logger
	mux    *http.ServeMux
}

type GenerateRequest struct {
	Template         string     `json:"template"`
	Columns          []string   `json:"columns"`
	Rows             [][]string `json:"rows"`
	StartRow         int        `json:"start_row,omitempty"`          // 1-based, default 1
	RowsPerStatement *int       `json:"rows_per_statement,omitempty"` // omit for one statement per row
	SkipEmpty        *bool      `json:"skip_empty,omitempty"`         // default true
}

type GenerateResponse struct {
	RequestID  string   `json:"request_id"`
	Sheet      string   `json:"sheet,omitempty"`
	Mode       string   `json:"mode"`
	RowCount   int      `json:"row_count"`
	Statements []string `json:"statements"`
}

type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func NewServer(logger *zap.Logger) *Server {
	s := &Server{
		logger: logger,
		mux:    http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/generate", s.handleGenerate)
	s.mux.HandleFunc("/api/v1/upload", s.handleUpload)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting API server", zap.String("addr", addr))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	requestID := uuid.NewString()

	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		s.fail(w, requestID, fmt.Errorf("%w: invalid JSON: %v", errBadRequest, err))
		return
	}

	startRow := req.StartRow
	if startRow == 0 {
		startRow = 1
	}
	grid := &sheet.Grid{Rows: req.Rows}

	resp, err := generate(grid, req.Template, req.Columns, startRow, req.RowsPerStatement, req.SkipEmpty)
	if err != nil {
		s.fail(w, requestID, err)
		return
	}
	resp.RequestID = requestID

	s.logger.Info("Generated statements",
		zap.String("request_id", requestID),
		zap.String("mode", resp.Mode),
		zap.Int("rows", resp.RowCount),
		zap.Int("statements", len(resp.Statements)),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	requestID := uuid.NewString()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		s.fail(w, requestID, fmt.Errorf("%w: invalid multipart form: %v", errBadRequest, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, requestID, fmt.Errorf("%w: missing file field: %v", errBadRequest, err))
		return
	}
	defer file.Close()

	path, cleanup, err := spool(file, filepath.Ext(header.Filename))
	if err != nil {
		s.fail(w, requestID, err)
		return
	}
	defer cleanup()

	startRow := config.DefaultStartRow
	if v := r.FormValue("start_row"); v != "" {
		if startRow, err = strconv.Atoi(v); err != nil {
			s.fail(w, requestID, fmt.Errorf("%w: start_row: %v", errBadRequest, err))
			return
		}
	}

	var rowsPerStatement *int
	if v := r.FormValue("rows_per_statement"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.fail(w, requestID, fmt.Errorf("%w: rows_per_statement: %v", errBadRequest, err))
			return
		}
		rowsPerStatement = &n
	}

	var skipEmpty *bool
	if v := r.FormValue("skip_empty"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.fail(w, requestID, fmt.Errorf("%w: skip_empty: %v", errBadRequest, err))
			return
		}
		skipEmpty = &b
	}

	grid, err := sheet.Open(path, r.FormValue("sheet"))
	if err != nil {
		s.fail(w, requestID, err)
		return
	}

	columns := sqlgen.ParseColumnList(r.FormValue("columns"))
	resp, err := generate(grid, r.FormValue("template"), columns, startRow, rowsPerStatement, skipEmpty)
	if err != nil {
		s.fail(w, requestID, err)
		return
	}
	resp.RequestID = requestID

	s.logger.Info("Generated statements from upload",
		zap.String("request_id", requestID),
		zap.String("filename", header.Filename),
		zap.String("sheet", grid.Sheet),
		zap.String("mode", resp.Mode),
		zap.Int("rows", resp.RowCount),
		zap.Int("statements", len(resp.Statements)),
	)
	writeJSON(w, http.StatusOK, resp)
}

func generate(grid *sheet.Grid, template string, columns []string, startRow int, rowsPerStatement *int, skipEmpty *bool) (*GenerateResponse, error) {
	if template == "" {
		return nil, fmt.Errorf("%w: template is required", errBadRequest)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: columns are required", errBadRequest)
	}

	skip := true
	if skipEmpty != nil {
		skip = *skipEmpty
	}

	batch := 0
	if rowsPerStatement != nil {
		if *rowsPerStatement < 1 {
			return nil, fmt.Errorf("%w: rows_per_statement is %d", sqlgen.ErrInvalidBatchSize, *rowsPerStatement)
		}
		batch = *rowsPerStatement
	}

	rows, err := etl.ExtractRows(grid, columns, startRow, skip)
	if err != nil {
		return nil, err
	}

	statements, mode, err := etl.GenerateStatements(rows, template, columns, batch)
	if err != nil {
		return nil, err
	}

	return &GenerateResponse{
		Sheet:      grid.Sheet,
		Mode:       mode,
		RowCount:   len(rows),
		Statements: statements,
	}, nil
}

// spool copies an upload to a temp file so the sheet loader can open it by
// path. ext keeps the .csv/.xlsx dispatch working.
func spool(src io.Reader, ext string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "sheetsql-upload-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	cleanup := func() { os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to store upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to store upload: %w", err)
	}
	return tmp.Name(), cleanup, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, sqlgen.ErrInvalidColumnLabel),
		errors.Is(err, sqlgen.ErrNoDataFound),
		errors.Is(err, sqlgen.ErrInvalidBatchSize),
		errors.Is(err, sheet.ErrSheetNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, requestID string, err error) {
	status := statusFor(err)
	s.logger.Warn("Request failed",
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeJSON(w, status, ErrorResponse{RequestID: requestID, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
