// Package export renders portal data as XLSX workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/reports"
)

// Sheet is one worksheet: a header row and data rows. Cells may be strings,
// numbers or anything else excelize accepts.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]any
}

// Write renders sheets into a workbook and writes it to w.
func Write(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("new style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Title); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Title); err != nil {
			return fmt.Errorf("new sheet: %w", err)
		}

		header := make([]any, len(s.Header))
		for c, h := range s.Header {
			header[c] = h
		}
		if err := f.SetSheetRow(s.Title, "A1", &header); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
		if len(s.Header) > 0 {
			end, err := excelize.CoordinatesToCellName(len(s.Header), 1)
			if err != nil {
				return fmt.Errorf("header range: %w", err)
			}
			if err := f.SetCellStyle(s.Title, "A1", end, bold); err != nil {
				return fmt.Errorf("style header: %w", err)
			}
			if err := f.AutoFilter(s.Title, "A1:"+end, nil); err != nil {
				return fmt.Errorf("auto filter: %w", err)
			}
		}

		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return fmt.Errorf("row %d: %w", r+2, err)
			}
			if err := f.SetSheetRow(s.Title, cell, &row); err != nil {
				return fmt.Errorf("set row %d: %w", r+2, err)
			}
		}

		for c := 1; c <= len(s.Header); c++ {
			col, err := excelize.ColumnNumberToName(c)
			if err != nil {
				return fmt.Errorf("column %d: %w", c, err)
			}
			if err := f.SetColWidth(s.Title, col, col, columnWidth(s, c-1)); err != nil {
				return fmt.Errorf("set width %s: %w", col, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// columnWidth estimates a width from the header and the first rows.
func columnWidth(s Sheet, c int) float64 {
	widest := len(s.Header[c])
	for r := 0; r < min(50, len(s.Rows)); r++ {
		if c < len(s.Rows[r]) {
			if l := len(fmt.Sprint(s.Rows[r][c])); l > widest {
				widest = l
			}
		}
	}
	return max(12, min(40, float64(widest)*0.9))
}

// TransactionLogSheet lists flattened transactions as produced by reports.TransactionLogs.
func TransactionLogSheet(entries []reports.LogEntry) Sheet {
	s := Sheet{
		Title:  "Transactions",
		Header: []string{"Date", "Transaction ID", "Student ID", "Student", "Type", "Description", "Amount", "Status", "Recorded By"},
	}
	for _, e := range entries {
		s.Rows = append(s.Rows, []any{
			e.Date.Format("2006-01-02"),
			e.ID,
			e.StudentID,
			e.StudentName,
			string(e.Type),
			e.Description,
			e.Amount.InexactFloat64(),
			string(e.Status),
			e.RecordedBy,
		})
	}
	return s
}

// AccountsSheet lists every student account with its balance.
func AccountsSheet(students []*models.Student) Sheet {
	s := Sheet{
		Title:  "Accounts",
		Header: []string{"Student ID", "Last Name", "First Name", "Course", "Year", "Enrollment", "Transactions", "Balance"},
	}
	for _, st := range students {
		s.Rows = append(s.Rows, []any{
			st.ID,
			st.LastName,
			st.FirstName,
			st.CourseID,
			st.YearLevel,
			string(st.EnrollmentStatus),
			len(st.Transactions),
			st.Balance.InexactFloat64(),
		})
	}
	return s
}
