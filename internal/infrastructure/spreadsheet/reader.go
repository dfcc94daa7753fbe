package spreadsheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/applicant_importer/internal/domain"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type Reader struct {
	log   *slog.Logger
	path  string
	sheet string
}

func NewReader(log *slog.Logger, path, sheet string) *Reader {
	return &Reader{
		log:   log,
		path:  path,
		sheet: sheet,
	}
}

func (r *Reader) Applicants(ctx context.Context) ([]*domain.Applicant, error) {
	r.log.DebugContext(ctx, "reading applicants", slog.String("path", r.path))

	var (
		applicants []*domain.Applicant
		err        error
	)

	switch ext := strings.ToLower(filepath.Ext(r.path)); ext {
	case ".xlsx", ".xlsm":
		applicants, err = r.readWorkbook()
	case ".csv":
		applicants, err = r.readDelimited(',')
	case ".tsv":
		applicants, err = r.readDelimited('\t')
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	r.log.DebugContext(ctx, "successfully read applicants", slog.Int("applicants_count", len(applicants)))

	return applicants, nil
}

func (r *Reader) readDelimited(comma rune) (_ []*domain.Applicant, err error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	return decode(&delimitedReader{Reader: reader})
}

func (r *Reader) readWorkbook() (_ []*domain.Applicant, err error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	defer func() { err = errors.Join(err, rows.Close()) }()

	return decode(&sheetReader{rows: rows})
}

// rowReader is a record source that knows the spreadsheet row of the last record it returned.
type rowReader interface {
	csvutil.Reader
	Row() int
}

func decode(records rowReader) ([]*domain.Applicant, error) {
	header, err := records.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	padded := &paddedReader{records: records, width: len(header)}

	dec, err := csvutil.NewDecoder(padded, header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var applicants []*domain.Applicant
	for {
		var applicant domain.Applicant

		err := dec.Decode(&applicant)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode applicant on row %d: %w", padded.row, err)
		}

		applicant.Row = padded.row
		applicants = append(applicants, &applicant)
	}

	return applicants, nil
}

// paddedReader aligns every record to the header width and drops blank records.
// row holds the spreadsheet row of the last record returned.
type paddedReader struct {
	records rowReader
	width   int
	row     int
}

func (p *paddedReader) Read() ([]string, error) {
	for {
		record, err := p.records.Read()
		if err != nil {
			return nil, err
		}
		p.row = p.records.Row()

		if blank(record) {
			continue
		}

		if len(record) > p.width {
			return record[:p.width], nil
		}

		for len(record) < p.width {
			record = append(record, "")
		}

		return record, nil
	}
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// delimitedReader reports the line a record starts on, so rows stay aligned
// with the file even when csv.Reader skips empty lines.
type delimitedReader struct {
	*csv.Reader
}

func (d *delimitedReader) Row() int {
	line, _ := d.FieldPos(0)
	return line
}

// sheetReader counts rows itself, excelize.Rows yields gaps between stored rows as empty rows.
type sheetReader struct {
	rows *excelize.Rows
	row  int
}

func (s *sheetReader) Read() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	s.row++

	return s.rows.Columns()
}

func (s *sheetReader) Row() int {
	return s.row
}
