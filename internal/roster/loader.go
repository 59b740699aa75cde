package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/youruser/gradslides/internal/issue"
)

// Columns lists the data file columns in positional order.
var Columns = []string{
	"status", "student_id", "full_name", "first_name", "last_name",
	"ont_scholar", "honour_roll", "awards", "awards_prep", "certificat_prep", "not_ossd",
}

const (
	colStatus = iota
	colStudentID
	colFullName
	colFirstName
	colLastName
	colOntScholar
	colHonourRoll
	colAwards
	colAwardsPrep
	colCertificatePrep
	colNotOSSD
)

const (
	OntarioScholar = "Ontario Scholar"
	HonourRoll     = "Honour Roll"
)

var ErrUnsupportedFormat = errors.New("unsupported data file format")

// LoadStudents reads the graduate list at path. The first row is a header.
// Rows without a student number are skipped and reported to issues.
func LoadStudents(path string, issues *issue.Log) ([]Student, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		rows, err = readDelimited(path, '\t')
	case ".csv":
		rows, err = readDelimited(path, ',')
	case ".xlsx":
		rows, err = readWorkbook(path)
	default:
		return nil, fmt.Errorf("loading %s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("data file %s has no header", path)
	}
	return ParseRows(rows[1:], issues), nil
}

// ParseRows builds students from data rows that follow Columns.
func ParseRows(rows [][]string, issues *issue.Log) []Student {
	out := []Student{}
	for _, row := range rows {
		get := func(idx int) string {
			if idx < len(row) {
				return row[idx]
			}
			return ""
		}

		if get(colStudentID) == "" {
			issues.Addf("Student (%s) has no student number.", get(colFullName))
			continue
		}

		s := Student{
			Status:          get(colStatus),
			StudentID:       get(colStudentID),
			FullName:        get(colFullName),
			FirstName:       get(colFirstName),
			LastName:        get(colLastName),
			OntScholar:      get(colOntScholar),
			HonourRoll:      get(colHonourRoll),
			AwardsPrep:      get(colAwardsPrep),
			CertificatePrep: get(colCertificatePrep),
			NotOSSD:         get(colNotOSSD),
		}
		s.Awards = ParseAwards(get(colAwards), s.OntScholar, s.HonourRoll)
		out = append(out, s)
	}
	return out
}

// ParseAwards splits a semicolon separated award cell. Flag awards are
// prepended so the list reads Honour Roll, Ontario Scholar, then the rest.
func ParseAwards(cell, ontScholar, honourRoll string) []string {
	awards := []string{}
	for _, a := range strings.Split(cell, ";") {
		if t := strings.TrimSpace(a); t != "" {
			awards = append(awards, t)
		}
	}
	if ontScholar != "" {
		awards = append([]string{OntarioScholar}, awards...)
	}
	if honourRoll != "" {
		awards = append([]string{HonourRoll}, awards...)
	}
	return awards
}

// ByID indexes students by student number. The first row with a given
// number wins; later duplicates are reported.
func ByID(students []Student, issues *issue.Log) map[string]*Student {
	out := make(map[string]*Student, len(students))
	for i := range students {
		s := &students[i]
		if prev, ok := out[s.StudentID]; ok {
			issues.Addf("Student number %s is used by both %s and %s.", s.StudentID, prev.FullName, s.FullName)
			continue
		}
		out[s.StudentID] = s
	}
	return out
}

func readDelimited(path string, comma rune) ([][]string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return readRecords(fp, comma)
}

func readRecords(r io.Reader, comma rune) ([][]string, error) {
	// spreadsheet exports often carry a UTF-8 byte order mark
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	if comma == '\t' {
		cr.LazyQuotes = true
	}
	return cr.ReadAll()
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook does not contain any sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}
	return rows, nil
}
