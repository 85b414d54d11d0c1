package impl

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"batulens/config"
	deliverycontext "batulens/internal/delivery/context"
	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	"batulens/internal/domain/repository"
	"batulens/internal/domain/service"
	"batulens/internal/errors"
	"batulens/internal/usecase"
	"batulens/internal/util"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// requiredUploadColumns are the dataset columns the analytics pipeline
// expects. Header matching is case-insensitive.
var requiredUploadColumns = []string{"wisata", "rating", "review_text", "date"}

// visitService implements the VisitUsecase interface.
type visitService struct {
	visitRepo repository.VisitRepository
	publisher service.EventPublisher
	maxUpload int64
	logger    *slog.Logger
}

// NewVisitService is the constructor for visitService. The publisher may be
// nil when no event transport is configured.
func NewVisitService(
	cfg *config.Config,
	visitRepo repository.VisitRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.VisitUsecase {
	return &visitService{
		visitRepo: visitRepo,
		publisher: publisher,
		maxUpload: cfg.Upload.MaxBytes,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publish announces a dataset mutation. Publishing is best effort; a failed
// announcement never rolls back the mutation it describes.
func (srv *visitService) publish(ctx context.Context, event *service.DatasetEvent) {
	if srv.publisher == nil {
		return
	}

	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := srv.publisher.PublishDatasetEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("failed to publish dataset event",
			slog.String("action", event.Action),
			slog.Any("error", err))
	}
}

func validateVisitInput(input usecase.VisitInput) (string, error) {
	name := strings.TrimSpace(input.NamaWisata)
	if name == "" || input.JumlahKunjungan < 0 {
		return "", domainerrors.ErrInvalidVisitData
	}

	return name, nil
}

// ListVisits returns every visit record sorted by destination name.
func (srv *visitService) ListVisits(ctx context.Context) ([]*entity.VisitRecord, error) {
	visits, err := srv.visitRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}

// AddVisit creates a new visit record.
func (srv *visitService) AddVisit(ctx context.Context, input usecase.VisitInput) (*entity.VisitRecord, error) {
	name, err := validateVisitInput(input)
	if err != nil {
		return nil, err
	}

	record := &entity.VisitRecord{
		Name:  name,
		Count: input.JumlahKunjungan,
	}
	if err := srv.visitRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("visit record created",
		slog.String("nama_wisata", name),
		slog.Int64("jumlah_kunjungan", input.JumlahKunjungan))
	srv.publish(ctx, &service.DatasetEvent{
		Action:     service.DatasetActionAdd,
		NamaWisata: name,
	})

	return record, nil
}

// UpdateVisit replaces the visit count of an existing record.
func (srv *visitService) UpdateVisit(ctx context.Context, input usecase.VisitInput) (*entity.VisitRecord, error) {
	name, err := validateVisitInput(input)
	if err != nil {
		return nil, err
	}

	record := &entity.VisitRecord{
		Name:  name,
		Count: input.JumlahKunjungan,
	}
	if err := srv.visitRepo.Update(ctx, record); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrWisataNotFound
		}

		return nil, errors.Wrap(err, "failed to update visit")
	}

	srv.publish(ctx, &service.DatasetEvent{
		Action:     service.DatasetActionUpdate,
		NamaWisata: name,
	})

	return record, nil
}

// DeleteVisit removes a visit record by destination name.
func (srv *visitService) DeleteVisit(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domainerrors.ErrInvalidVisitData
	}

	if err := srv.visitRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return domainerrors.ErrWisataNotFound
		}

		return errors.Wrap(err, "failed to delete visit")
	}

	srv.publish(ctx, &service.DatasetEvent{
		Action:     service.DatasetActionDelete,
		NamaWisata: name,
	})

	return nil
}

// UploadDataset validates an uploaded review dataset and announces it. The
// rows themselves are consumed by the analytics pipeline, not stored here.
func (srv *visitService) UploadDataset(ctx context.Context, input usecase.UploadInput) (*usecase.UploadOutput, error) {
	if input.Size > srv.maxUpload {
		return nil, domainerrors.ErrUploadTooLarge
	}

	// Size reported by the client is advisory; enforce the limit while
	// reading.
	content, err := io.ReadAll(io.LimitReader(input.Reader, srv.maxUpload+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(content)) > srv.maxUpload {
		return nil, domainerrors.ErrUploadTooLarge
	}

	var header []string
	var rows int
	switch strings.ToLower(filepath.Ext(input.Filename)) {
	case ".csv":
		header, rows, err = readCSVDataset(content)
	case ".xlsx", ".xls":
		header, rows, err = readExcelDataset(content)
	default:
		return nil, domainerrors.ErrUnsupportedFileType
	}
	if err != nil {
		return nil, err
	}

	if err := checkUploadColumns(header); err != nil {
		return nil, err
	}

	checksum, err := util.ChecksumReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "failed to checksum upload")
	}

	srv.log(ctx).Info("dataset uploaded",
		slog.String("filename", input.Filename),
		slog.String("size", util.FormatBytes(int64(len(content)))),
		slog.Int("rows", rows),
		slog.String("checksum", checksum))
	srv.publish(ctx, &service.DatasetEvent{
		Action: service.DatasetActionUpload,
		Rows:   rows,
	})

	return &usecase.UploadOutput{
		Filename:  input.Filename,
		TotalRows: rows,
		Checksum:  checksum,
	}, nil
}

func readCSVDataset(content []byte) (header []string, rows int, err error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err = reader.Read()
	if err != nil {
		return nil, 0, domainerrors.ErrMissingColumns
	}

	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to parse csv upload")
		}
		rows++
	}

	return header, rows, nil
}

func readExcelDataset(content []byte) (header []string, rows int, err error) {
	book, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, 0, domainerrors.ErrUnsupportedFileType
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, domainerrors.ErrMissingColumns
	}

	all, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to parse excel upload")
	}
	if len(all) == 0 {
		return nil, 0, domainerrors.ErrMissingColumns
	}

	return all[0], len(all) - 1, nil
}

func checkUploadColumns(header []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.ToLower(strings.TrimSpace(col))] = true
	}

	for _, required := range requiredUploadColumns {
		if !present[required] {
			return domainerrors.ErrMissingColumns
		}
	}

	return nil
}

// ExportVisits renders the visit records as a CSV, highest counts first.
func (srv *visitService) ExportVisits(ctx context.Context) (*usecase.ExportOutput, error) {
	content, err := srv.exportCSV(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ExportOutput{
		Filename:    fmt.Sprintf("kunjungan_export_%s.csv", time.Now().Format("20060102_150405")),
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

// BackupData bundles the visit export into a zip archive.
func (srv *visitService) BackupData(ctx context.Context) (*usecase.ExportOutput, error) {
	content, err := srv.exportCSV(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	entry, err := archive.Create("kunjungan_wisata.csv")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create backup entry")
	}
	if _, err := entry.Write(content); err != nil {
		return nil, errors.Wrap(err, "failed to write backup entry")
	}
	if err := archive.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize backup")
	}

	return &usecase.ExportOutput{
		Filename:    fmt.Sprintf("backup_data_%s.zip", time.Now().Format("20060102_150405")),
		ContentType: "application/zip",
		Content:     buf.Bytes(),
	}, nil
}

func (srv *visitService) exportCSV(ctx context.Context) ([]byte, error) {
	visits, err := srv.visitRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits for export")
	}

	sort.SliceStable(visits, func(i, j int) bool {
		if visits[i].Count != visits[j].Count {
			return visits[i].Count > visits[j].Count
		}

		return visits[i].Name < visits[j].Name
	})

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"nama_wisata", "jumlah_kunjungan"}); err != nil {
		return nil, errors.Wrap(err, "failed to write export header")
	}
	for _, visit := range visits {
		if err := writer.Write([]string{visit.Name, fmt.Sprintf("%d", visit.Count)}); err != nil {
			return nil, errors.Wrap(err, "failed to write export row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush export")
	}

	return buf.Bytes(), nil
}

// Template returns an empty upload workbook with the expected columns and
// one example row.
func (srv *visitService) Template(_ context.Context) (*usecase.ExportOutput, error) {
	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	for i, col := range requiredUploadColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build template header")
		}
		if err := book.SetCellValue(sheet, cell, col); err != nil {
			return nil, errors.Wrap(err, "failed to write template header")
		}
	}

	example := []any{"Jatim Park 1", 4.5, "Tempatnya bagus dan bersih", "2025-01-15"}
	for i, value := range example {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build template row")
		}
		if err := book.SetCellValue(sheet, cell, value); err != nil {
			return nil, errors.Wrap(err, "failed to write template row")
		}
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render template")
	}

	return &usecase.ExportOutput{
		Filename:    "template_upload.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}
