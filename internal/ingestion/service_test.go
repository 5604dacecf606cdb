package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"gqlug/internal/domain"
	"gqlug/internal/filter"
)

type recordingUserRepo struct {
	mu       sync.Mutex
	inserted []domain.UserInsert
	actors   []uuid.UUID
	failFor  string
}

func (r *recordingUserRepo) Insert(ctx context.Context, ins domain.UserInsert, actor uuid.UUID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFor != "" && ins.Surname == r.failFor {
		return domain.User{}, errors.New("duplicate user")
	}
	r.inserted = append(r.inserted, ins)
	r.actors = append(r.actors, actor)
	id := ins.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return domain.User{ID: id, Name: ins.Name, Surname: ins.Surname}, nil
}

func (r *recordingUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return domain.User{}, domain.ErrNotFound
}

func (r *recordingUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	return nil, nil
}

func (r *recordingUserRepo) List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.User, int, error) {
	return nil, 0, nil
}

func (r *recordingUserRepo) SearchByLetters(ctx context.Context, letters string, validity *bool) ([]domain.User, error) {
	return nil, nil
}

func (r *recordingUserRepo) Update(ctx context.Context, upd domain.UserUpdate, actor uuid.UUID) (domain.User, error) {
	return domain.User{}, domain.ErrNotFound
}

func newTestService(repo *recordingUserRepo) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(repo, log)
}

func ingestCSV(t *testing.T, service *Service, csv string) (Summary, error) {
	t.Helper()
	return service.Ingest(context.Background(), Request{
		FileName: "users.csv",
		Data:     strings.NewReader(csv),
		Actor:    uuid.New(),
	})
}

func TestIngest_CSVInsertsValidRows(t *testing.T) {
	repo := &recordingUserRepo{}
	service := newTestService(repo)

	summary, err := ingestCSV(t, service, "Name,Surname,E-Mail,Valid\nJana,Novakova,jana@example.org,yes\nPetr,Svoboda,,\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalRows != 2 || summary.ValidRows != 2 || summary.InvalidRows != 0 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	if len(repo.inserted) != 2 {
		t.Fatalf("expected two inserts, got %d", len(repo.inserted))
	}

	for _, ins := range repo.inserted {
		if ins.Surname == "Novakova" {
			if ins.Email == nil || *ins.Email != "jana@example.org" {
				t.Fatalf("expected email to be mapped, got %#v", ins.Email)
			}
			if ins.Valid == nil || !*ins.Valid {
				t.Fatalf("expected valid yes to parse, got %#v", ins.Valid)
			}
		}
		if ins.Surname == "Svoboda" {
			if ins.Email != nil || ins.Valid != nil {
				t.Fatalf("expected empty cells to stay unset, got %#v", ins)
			}
		}
	}
}

func TestIngest_InvalidRowsReportedNotFatal(t *testing.T) {
	repo := &recordingUserRepo{}
	service := newTestService(repo)

	summary, err := ingestCSV(t, service, "name,surname,email\nJana,Novakova,jana@example.org\nPetr,,petr@example.org\nEva,Mala,not-an-email\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ValidRows != 1 || summary.InvalidRows != 2 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	if len(summary.Errors) != 2 {
		t.Fatalf("expected two row errors, got %#v", summary.Errors)
	}
	// Row numbers are 1-based including the header.
	if summary.Errors[0].Row != 3 || summary.Errors[1].Row != 4 {
		t.Fatalf("unexpected row numbers: %#v", summary.Errors)
	}
}

func TestIngest_RepositoryFailureCountsAsInvalidRow(t *testing.T) {
	repo := &recordingUserRepo{failFor: "Svoboda"}
	service := newTestService(repo)

	summary, err := ingestCSV(t, service, "name,surname\nJana,Novakova\nPetr,Svoboda\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ValidRows != 1 || summary.InvalidRows != 1 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
}

func TestIngest_MissingRequiredColumnFails(t *testing.T) {
	service := newTestService(&recordingUserRepo{})

	if _, err := ingestCSV(t, service, "name,email\nJana,jana@example.org\n"); err == nil {
		t.Fatal("expected missing surname column to fail")
	}
}

func TestIngest_UnsupportedFormatFails(t *testing.T) {
	service := newTestService(&recordingUserRepo{})

	_, err := service.Ingest(context.Background(), Request{
		FileName: "users.pdf",
		Data:     strings.NewReader("whatever"),
		Actor:    uuid.New(),
	})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestIngest_MissingActorFails(t *testing.T) {
	service := newTestService(&recordingUserRepo{})

	_, err := service.Ingest(context.Background(), Request{
		FileName: "users.csv",
		Data:     strings.NewReader("name,surname\nJana,Novakova\n"),
	})
	if err == nil {
		t.Fatal("expected missing actor to fail")
	}
}

func TestIngest_CSVWithByteOrderMark(t *testing.T) {
	repo := &recordingUserRepo{}
	service := newTestService(repo)

	payload := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,surname\nJana,Novakova\n")...)
	summary, err := service.Ingest(context.Background(), Request{
		FileName: "users.csv",
		Data:     bytes.NewReader(payload),
		Actor:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ValidRows != 1 {
		t.Fatalf("expected the BOM to be stripped, got %#v", summary)
	}
}

func TestIngest_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"name", "surname", "valid"},
		{"Jana", "Novakova", "true"},
		{"Petr", "Svoboda", "ne"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &recordingUserRepo{}
	service := newTestService(repo)

	summary, err := service.Ingest(context.Background(), Request{
		FileName: "users.xlsx",
		Data:     &buf,
		Actor:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ValidRows != 2 {
		t.Fatalf("unexpected summary: %#v", summary)
	}

	for _, ins := range repo.inserted {
		if ins.Surname == "Svoboda" && (ins.Valid == nil || *ins.Valid) {
			t.Fatalf("expected \"ne\" to parse as false, got %#v", ins.Valid)
		}
	}
}

func TestParseBoolCell(t *testing.T) {
	cases := map[string]bool{
		"yes": true, "Y": true, "ano": true, "true": true, "1": true,
		"no": false, "N": false, "ne": false, "false": false, "0": false,
	}
	for raw, want := range cases {
		got, err := parseBoolCell(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parseBoolCell(%q) = %v, want %v", raw, got, want)
		}
	}

	if _, err := parseBoolCell("maybe"); err == nil {
		t.Fatal("expected error for unparseable flag")
	}
}
