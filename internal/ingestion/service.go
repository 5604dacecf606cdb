package ingestion

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"gqlug/internal/domain"
	"gqlug/internal/repository"
)

var (
	// ErrUnsupportedFormat is returned when an uploaded file is not supported.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	byteOrderMark = []byte{0xEF, 0xBB, 0xBF}
)

// insertWorkers bounds the number of concurrent row inserts.
const insertWorkers = 4

// Service imports users from tabular uploads.
type Service struct {
	userRepo repository.UserRepository
	log      *logrus.Logger
}

// NewService creates a new ingestion service.
func NewService(userRepo repository.UserRepository, log *logrus.Logger) *Service {
	return &Service{userRepo: userRepo, log: log}
}

// Request describes the ingestion input.
type Request struct {
	FileName string
	Data     io.Reader
	Actor    uuid.UUID
}

// RowError reports why one row was rejected. Row numbers are 1-based and
// include the header row, matching what the user sees in a spreadsheet.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Summary returns ingestion level metrics.
type Summary struct {
	TotalRows   int        `json:"totalRows"`
	ValidRows   int        `json:"validRows"`
	InvalidRows int        `json:"invalidRows"`
	Errors      []RowError `json:"errors,omitempty"`
}

type tableData struct {
	headers []string
	rows    [][]string
}

// userColumns maps accepted header names onto user attributes. Headers are
// matched after sanitizing, so "E-Mail" and "email" land on the same column.
var userColumns = map[string]string{
	"id":      "id",
	"name":    "name",
	"surname": "surname",
	"email":   "email",
	"e_mail":  "email",
	"valid":   "valid",
}

// Ingest reads the uploaded file and inserts one user per valid row. Invalid
// rows are reported in the summary and never abort the rest of the upload.
func (s *Service) Ingest(ctx context.Context, req Request) (Summary, error) {
	summary := Summary{}

	if req.Actor == uuid.Nil {
		return summary, errors.New("acting user is required")
	}
	if req.Data == nil {
		return summary, errors.New("data reader is required")
	}

	payload, err := io.ReadAll(req.Data)
	if err != nil {
		return summary, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(payload) == 0 {
		return summary, errors.New("file is empty")
	}

	table, err := parseTable(req.FileName, payload)
	if err != nil {
		return summary, err
	}
	if len(table.headers) == 0 {
		return summary, errors.New("no header row detected")
	}

	columns, err := mapColumns(table.headers)
	if err != nil {
		return summary, err
	}

	summary.TotalRows = len(table.rows)

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(insertWorkers)

	rowFailed := func(rowNumber int, cause error) {
		mu.Lock()
		defer mu.Unlock()
		summary.InvalidRows++
		summary.Errors = append(summary.Errors, RowError{Row: rowNumber, Message: cause.Error()})
	}

	for rowIdx, row := range table.rows {
		rowNumber := rowIdx + 2 // 1-based, after the header row

		ins, err := buildUserInsert(columns, row)
		if err != nil {
			rowFailed(rowNumber, err)
			continue
		}

		group.Go(func() error {
			if _, err := s.userRepo.Insert(groupCtx, ins, req.Actor); err != nil {
				s.log.WithFields(logrus.Fields{
					"file": req.FileName,
					"row":  rowNumber,
				}).WithError(err).Warn("row insert failed")
				rowFailed(rowNumber, err)
				return nil
			}
			mu.Lock()
			summary.ValidRows++
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return summary, err
	}

	sort.Slice(summary.Errors, func(i, j int) bool {
		return summary.Errors[i].Row < summary.Errors[j].Row
	})
	return summary, nil
}

// mapColumns resolves which table column feeds which user attribute. Unknown
// columns are ignored, name and surname must be present.
func mapColumns(headers []string) (map[string]int, error) {
	columns := make(map[string]int)
	for idx, header := range headers {
		attr, ok := userColumns[header]
		if !ok {
			continue
		}
		if _, dup := columns[attr]; dup {
			return nil, fmt.Errorf("duplicate column for %s", attr)
		}
		columns[attr] = idx
	}

	for _, required := range []string{"name", "surname"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %s", required)
		}
	}
	return columns, nil
}

func cellAt(row []string, idx int, ok bool) string {
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func buildUserInsert(columns map[string]int, row []string) (domain.UserInsert, error) {
	var ins domain.UserInsert

	idx, ok := columns["name"]
	ins.Name = cellAt(row, idx, ok)
	if ins.Name == "" {
		return ins, errors.New("name is empty")
	}

	idx, ok = columns["surname"]
	ins.Surname = cellAt(row, idx, ok)
	if ins.Surname == "" {
		return ins, errors.New("surname is empty")
	}

	idx, ok = columns["id"]
	if raw := cellAt(row, idx, ok); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ins, fmt.Errorf("invalid id: %w", err)
		}
		ins.ID = id
	}

	idx, ok = columns["email"]
	if raw := cellAt(row, idx, ok); raw != "" {
		if !strings.Contains(raw, "@") {
			return ins, fmt.Errorf("invalid email %q", raw)
		}
		email := raw
		ins.Email = &email
	}

	idx, ok = columns["valid"]
	if raw := cellAt(row, idx, ok); raw != "" {
		valid, err := parseBoolCell(raw)
		if err != nil {
			return ins, err
		}
		ins.Valid = &valid
	}

	return ins, nil
}

func parseBoolCell(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "ano":
		return true, nil
	case "no", "n", "ne":
		return false, nil
	}
	value, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return false, fmt.Errorf("invalid valid flag %q", raw)
	}
	return value, nil
}

func parseTable(fileName string, payload []byte) (tableData, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return parseCSV(payload)
	case ".xlsx":
		return parseExcel(payload)
	default:
		return tableData{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func parseCSV(payload []byte) (tableData, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return tableData{}, fmt.Errorf("failed to read csv: %w", err)
	}

	return normalizeTable(records)
}

func parseExcel(payload []byte) (tableData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return tableData{}, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return tableData{}, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return tableData{}, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}

	return normalizeTable(rows)
}

func normalizeTable(records [][]string) (tableData, error) {
	if len(records) == 0 {
		return tableData{}, errors.New("no rows found in file")
	}

	var headerRow []string
	var dataRows [][]string

	for _, row := range records {
		if len(cleanRow(row)) == 0 {
			continue
		}
		if headerRow == nil {
			headerRow = row
			continue
		}
		dataRows = append(dataRows, row)
	}

	if headerRow == nil {
		return tableData{}, errors.New("header row could not be detected")
	}

	headers := sanitizeHeaders(headerRow)
	for i := range dataRows {
		dataRows[i] = padRow(dataRows[i], len(headers))
	}

	return tableData{headers: headers, rows: dataRows}, nil
}

func cleanRow(row []string) []string {
	var cleaned []string
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			cleaned = append(cleaned, cell)
		}
	}
	return cleaned
}

func sanitizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for idx, value := range raw {
		name := strings.ToLower(strings.TrimSpace(value))
		name = strings.ReplaceAll(name, " ", "_")
		name = strings.ReplaceAll(name, ".", "_")
		name = strings.ReplaceAll(name, "-", "_")
		name = strings.Trim(name, "_")
		if name == "" {
			name = fmt.Sprintf("column_%d", idx+1)
		}
		headers[idx] = name
	}
	return headers
}

func padRow(row []string, length int) []string {
	if len(row) >= length {
		return row[:length]
	}
	padded := make([]string, length)
	copy(padded, row)
	return padded
}
