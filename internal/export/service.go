package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/medrecord-tools/clinex/internal/report"
	"github.com/medrecord-tools/clinex/internal/repository"
)

// Service renders stored extraction results as XLSX workbooks, one row per
// report block.
type Service struct {
	docs    repository.DocumentRepository
	reports repository.ReportRecordRepository
	logger  *slog.Logger
}

func NewService(docs repository.DocumentRepository, reports repository.ReportRecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, reports: reports, logger: logger}
}

var headers = []string{
	"Document",
	"Report ID",
	"Clinical Terms",
	"Anatomical Locations",
	"Diagnosis",
	"Procedures",
	"ICD-10",
	"CPT",
	"HCPCS",
	"Modifiers",
}

// ExportXLSX returns a workbook covering the given documents; an empty ID
// list exports every known document.
func (s *Service) ExportXLSX(ctx context.Context, documentIDs []uuid.UUID) ([]byte, error) {
	start := time.Now()

	if len(documentIDs) == 0 {
		rows, err := s.docs.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		for _, d := range rows {
			documentIDs = append(documentIDs, d.ID)
		}
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIndex, _ := f.GetSheetIndex("Sheet1"); defIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, docID := range documentIDs {
		doc, err := s.docs.GetByID(ctx, docID)
		if err != nil {
			return nil, fmt.Errorf("load document %s: %w", docID, err)
		}
		recs, err := s.reports.ListByDocument(ctx, docID)
		if err != nil {
			return nil, fmt.Errorf("list reports for %s: %w", docID, err)
		}

		for _, stored := range recs {
			var rec report.Extracted
			if err := json.Unmarshal(stored.Payload, &rec); err != nil {
				return nil, fmt.Errorf("decode report %s/%d: %w", docID, stored.Seq, err)
			}

			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, doc.Filename)
			write(2, rec.ReportID)
			write(3, strings.Join(rec.ClinicalTerms, "; "))
			write(4, strings.Join(rec.AnatomicalLocations, "; "))
			write(5, strings.Join(rec.Diagnosis, "; "))
			write(6, strings.Join(rec.Procedures, "; "))
			write(7, strings.Join(rec.ICD10, "; "))
			write(8, strings.Join(rec.CPT, "; "))
			write(9, strings.Join(rec.HCPCS, "; "))
			write(10, strings.Join(rec.Modifiers, "; "))
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.xlsx.done", "documents", len(documentIDs), "rows", row-2, "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
