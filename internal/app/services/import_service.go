package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philip98/obsidian-server/internal/app/models"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
)

// StudentCreator is the slice of the student repository the importer needs.
type StudentCreator interface {
	Create(ctx context.Context, student *models.Student) error
}

// ImportOptions controls how a roster file is read. Column indexes are
// zero-based.
type ImportOptions struct {
	Comma        rune
	NameColumn   int
	YearColumn   int
	LetterColumn int
	SkipHeader   bool
}

// ImportRowError describes why one roster line was skipped.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportReport summarizes a roster import. Rows with bad data are skipped
// and reported; the rest are imported.
type ImportReport struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// ImportService loads student rosters from CSV exports of the school
// administration system
type ImportService struct {
	students StudentCreator
}

// NewImportService creates a new import service
func NewImportService(students StudentCreator) *ImportService {
	return &ImportService{
		students: students,
	}
}

// ImportRoster reads a CSV roster and creates one student per row. Rows that
// cannot be parsed are skipped and listed in the report; store errors abort
// the import.
func (s *ImportService) ImportRoster(ctx context.Context, r io.Reader, opts ImportOptions) (*ImportReport, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	if opts.YearColumn == 0 && opts.NameColumn == 0 && opts.LetterColumn == 0 {
		opts.NameColumn, opts.YearColumn, opts.LetterColumn = 0, 1, 2
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	report := &ImportReport{}
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, fmt.Sprintf("malformed CSV: %v", err))
		}

		line++
		if line == 1 && opts.SkipHeader {
			continue
		}

		student, rowErr := s.parseRow(record, opts)
		if rowErr != "" {
			report.Skipped++
			report.Errors = append(report.Errors, ImportRowError{Line: line, Message: rowErr})
			continue
		}

		if err := s.students.Create(ctx, student); err != nil {
			return report, fmt.Errorf("error importing line %d: %w", line, err)
		}
		report.Imported++
	}

	return report, nil
}

func (s *ImportService) parseRow(record []string, opts ImportOptions) (*models.Student, string) {
	maxCol := opts.NameColumn
	if opts.YearColumn > maxCol {
		maxCol = opts.YearColumn
	}
	if opts.LetterColumn > maxCol {
		maxCol = opts.LetterColumn
	}
	if len(record) <= maxCol {
		return nil, fmt.Sprintf("expected at least %d columns, got %d", maxCol+1, len(record))
	}

	name := strings.TrimSpace(record[opts.NameColumn])
	if name == "" {
		return nil, "name is empty"
	}

	year, err := strconv.Atoi(strings.TrimSpace(record[opts.YearColumn]))
	if err != nil {
		return nil, fmt.Sprintf("invalid graduation year %q", record[opts.YearColumn])
	}

	letter := strings.ToLower(strings.TrimSpace(record[opts.LetterColumn]))
	if len(letter) > 1 {
		return nil, fmt.Sprintf("invalid form letter %q", record[opts.LetterColumn])
	}

	return &models.Student{
		Name:           name,
		GraduationYear: year,
		FormLetter:     letter,
	}, ""
}
