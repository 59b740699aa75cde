package roster

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/youruser/gradslides/internal/issue"
)

const header = "Status\tStudent #\tFull Name\tFirst\tLast\tOS\tHR\tAwards\tAwards Prep\tCert Prep\tNot OSSD\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseAwards(t *testing.T) {
	tests := []struct {
		name   string
		cell   string
		os, hr string
		want   []string
	}{
		{"empty", "", "", "", []string{}},
		{"split and trim", "Math Award; Science Award ;;", "", "", []string{"Math Award", "Science Award"}},
		{"whitespace only entries dropped", " ; ", "", "", []string{}},
		{"ontario scholar first", "Art", "Y", "", []string{"Ontario Scholar", "Art"}},
		{"honour roll before ontario scholar", "Art;Music", "Y", "x", []string{"Honour Roll", "Ontario Scholar", "Art", "Music"}},
		{"honour roll only", "", "", "TRUE", []string{"Honour Roll"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAwards(tt.cell, tt.os, tt.hr)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAwards mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadStudentsTSV(t *testing.T) {
	data := "\ufeff" + header +
		"Graduating\t1001\tAda Lovelace\tAda\tLovelace\tY\tY\tMath Award;Computing\tx\t\t\n" +
		"Graduating\t\tNo Number\tNo\tNumber\t\t\t\t\t\t\n" +
		"Graduating\t1002\tAlan Turing\tAlan\tTuring\n"
	path := writeFile(t, "grads.tsv", data)

	var out strings.Builder
	issues := issue.New(&out)
	students, err := LoadStudents(path, issues)
	require.NoError(t, err)

	want := []Student{
		{
			Status:     "Graduating",
			StudentID:  "1001",
			FullName:   "Ada Lovelace",
			FirstName:  "Ada",
			LastName:   "Lovelace",
			OntScholar: "Y",
			HonourRoll: "Y",
			Awards:     []string{"Honour Roll", "Ontario Scholar", "Math Award", "Computing"},
			AwardsPrep: "x",
		},
		{
			Status:    "Graduating",
			StudentID: "1002",
			FullName:  "Alan Turing",
			FirstName: "Alan",
			LastName:  "Turing",
			Awards:    []string{},
		},
	}
	if diff := cmp.Diff(want, students); diff != "" {
		t.Errorf("students mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Student (No Number) has no student number."}, issues.Items())
	assert.Contains(t, out.String(), "ISSUE: Student (No Number) has no student number.")
}

func TestLoadStudentsCSV(t *testing.T) {
	path := writeFile(t, "grads.csv", "status,id,name,first,last,os,hr,awards\nGraduating,7,\"Grace Hopper\",Grace,Hopper,,,\"Navy; COBOL\"\n")
	students, err := LoadStudents(path, issue.Discard())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "7", students[0].StudentID)
	assert.Equal(t, []string{"Navy", "COBOL"}, students[0].Awards)
}

func TestLoadStudentsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grads.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Status", "Student #", "Full Name", "First", "Last", "OS", "HR", "Awards"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Graduating", "2001", "Katherine Johnson", "Katherine", "Johnson", "", "Y", "Physics"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	students, err := LoadStudents(path, issue.Discard())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Katherine Johnson", students[0].FullName)
	assert.Equal(t, []string{"Honour Roll", "Physics"}, students[0].Awards)
}

func TestLoadStudentsErrors(t *testing.T) {
	_, err := LoadStudents(writeFile(t, "grads.json", "{}"), issue.Discard())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = LoadStudents(writeFile(t, "empty.tsv", ""), issue.Discard())
	assert.ErrorContains(t, err, "has no header")

	_, err = LoadStudents(filepath.Join(t.TempDir(), "missing.tsv"), issue.Discard())
	assert.Error(t, err)
}

func TestByID(t *testing.T) {
	students := []Student{
		{StudentID: "1", FullName: "First"},
		{StudentID: "2", FullName: "Second"},
		{StudentID: "1", FullName: "Duplicate"},
	}
	issues := issue.Discard()
	byID := ByID(students, issues)

	require.Len(t, byID, 2)
	assert.Equal(t, "First", byID["1"].FullName)
	assert.Same(t, &students[1], byID["2"])
	assert.Equal(t, []string{"Student number 1 is used by both First and Duplicate."}, issues.Items())
}

func TestDisplayName(t *testing.T) {
	s := Student{FirstName: "Zoé", LastName: "Smith"}
	assert.Equal(t, "Zoé Smith", s.DisplayName())
	assert.Equal(t, "Solo", Student{FirstName: "Solo"}.DisplayName())
}
