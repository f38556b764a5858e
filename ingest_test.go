package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadRowsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.csv")
	content := "ConsultantName,ProjectName,Efforts_Percentage,StartDate,EndDate\n" +
		"Alice,P1,50,2024-01-03,2024-01-16\n" +
		"Bob,P2,30,2024-01-08\n" // short row
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	header, rows, err := LoadRows(path)
	require.NoError(t, err)
	require.Equal(t, []string{"ConsultantName", "ProjectName", "Efforts_Percentage", "StartDate", "EndDate"}, header)
	require.Len(t, rows, 2)
	require.Len(t, rows[1], len(header), "short rows are padded to header width")
	require.Equal(t, "", rows[1][4])
}

func TestLoadRowsCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, _, err := LoadRows(path)
	require.ErrorIs(t, err, ErrEmptyResult)
}

func TestLoadRowsMissingFile(t *testing.T) {
	_, _, err := LoadRows(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestLoadRowsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"ConsultantName", "ProjectName", "Efforts_Percentage", "StartDate", "EndDate"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Alice", "P1", "50", "2024-01-03", "2024-01-16"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	header, rows, err := LoadRows(path)
	require.NoError(t, err)
	require.Equal(t, "ConsultantName", header[0])
	require.Len(t, rows, 1)
	require.Equal(t, "Alice", rows[0][0])
	require.Equal(t, "2024-01-16", rows[0][4])
}
