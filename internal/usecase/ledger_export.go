package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"paintshop_lots/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat defaults to CSV for an empty value.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportXLSX:
		return ExportXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ExportFile is a rendered ranking ready to be sent as an attachment.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

var rankingHeader = []string{"Client", "Total Received", "Transactions"}

const rankingSheet = "Ranking"

// ExportRanking renders one row per client: name, total, transaction count.
func ExportRanking(report entities.LedgerReport, format ExportFormat, at time.Time) (ExportFile, error) {
	window := "all"
	if report.WindowDays > 0 {
		window = strconv.Itoa(report.WindowDays) + "d"
	}
	base := fmt.Sprintf("ranking_%s_%s", window, at.UTC().Format("20060102_150405"))

	var buf bytes.Buffer
	switch format {
	case ExportXLSX:
		if err := WriteRankingXLSX(&buf, report.Ranking); err != nil {
			return ExportFile{}, err
		}
		return ExportFile{
			Name:        base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        buf.Bytes(),
		}, nil
	default:
		if err := WriteRankingCSV(&buf, report.Ranking); err != nil {
			return ExportFile{}, err
		}
		return ExportFile{Name: base + ".csv", ContentType: "text/csv; charset=utf-8", Data: buf.Bytes()}, nil
	}
}

func WriteRankingCSV(w io.Writer, ranking []entities.ClientRanking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rankingHeader); err != nil {
		return err
	}
	for _, r := range ranking {
		if err := cw.Write([]string{r.Client, r.Total.StringFixed(2), strconv.Itoa(r.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteRankingXLSX(w io.Writer, ranking []entities.ClientRanking) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(rankingSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]any, len(rankingHeader))
	for i, h := range rankingHeader {
		header[i] = h
	}
	if err := setSheetRow(f, rankingSheet, 1, header...); err != nil {
		return err
	}
	for i, r := range ranking {
		if err := setSheetRow(f, rankingSheet, i+2, r.Client, r.Total.Round(2).InexactFloat64(), r.Count); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// setSheetRow writes values into consecutive columns of row, starting at A.
func setSheetRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
