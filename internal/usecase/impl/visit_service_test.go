package impl

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	"batulens/internal/domain/repository"
	"batulens/internal/domain/service"
	mockRepo "batulens/internal/mocks/repository"
	mockService "batulens/internal/mocks/service"
	"batulens/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// visitServiceFixtures holds all test dependencies for visit service tests.
type visitServiceFixtures struct {
	service   usecase.VisitUsecase
	visitRepo *mockRepo.MockVisitRepository
	publisher *mockService.MockEventPublisher
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	visitRepo := mockRepo.NewMockVisitRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewVisitService(newTestConfig(), visitRepo, publisher, newDiscardLogger())

	return visitServiceFixtures{
		service:   svc,
		visitRepo: visitRepo,
		publisher: publisher,
	}
}

func TestVisitService_AddVisit(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	fx.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Return(nil)

	var published *service.DatasetEvent
	fx.publisher.EXPECT().
		PublishDatasetEvent(ctx, mock.AnythingOfType("*service.DatasetEvent")).
		Run(func(_ context.Context, event *service.DatasetEvent) {
			published = event
		}).
		Return(nil)

	record, err := fx.service.AddVisit(ctx, usecase.VisitInput{
		NamaWisata:      "  Jatim Park 1  ",
		JumlahKunjungan: 1_200_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jatim Park 1", record.Name)
	assert.Equal(t, int64(1_200_000), record.Count)

	require.NotNil(t, published)
	assert.Equal(t, service.DatasetActionAdd, published.Action)
	assert.Equal(t, "Jatim Park 1", published.NamaWisata)
	assert.NotEmpty(t, published.EventID)
	assert.False(t, published.OccurredAt.IsZero())
}

func TestVisitService_AddVisit_Invalid(t *testing.T) {
	fx := createTestVisitService(t)

	_, err := fx.service.AddVisit(context.Background(), usecase.VisitInput{
		NamaWisata:      "   ",
		JumlahKunjungan: 10,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVisitData)

	_, err = fx.service.AddVisit(context.Background(), usecase.VisitInput{
		NamaWisata:      "Jatim Park 1",
		JumlahKunjungan: -1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVisitData)
}

func TestVisitService_AddVisit_Duplicate(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	fx.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Return(domainerrors.ErrWisataAlreadyExists)

	_, err := fx.service.AddVisit(ctx, usecase.VisitInput{
		NamaWisata:      "Jatim Park 1",
		JumlahKunjungan: 100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrWisataAlreadyExists)
}

func TestVisitService_UpdateVisit_NotFound(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	fx.visitRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		Return(repository.ErrVisitNotFound)

	_, err := fx.service.UpdateVisit(ctx, usecase.VisitInput{
		NamaWisata:      "Tidak Ada",
		JumlahKunjungan: 100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrWisataNotFound)
}

func TestVisitService_DeleteVisit(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	fx.visitRepo.EXPECT().
		Delete(ctx, "Jatim Park 1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishDatasetEvent(ctx, mock.AnythingOfType("*service.DatasetEvent")).
		Return(nil)

	err := fx.service.DeleteVisit(ctx, "Jatim Park 1")
	require.NoError(t, err)
}

func TestVisitService_DeleteVisit_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	fx.visitRepo.EXPECT().
		Delete(ctx, "Jatim Park 1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishDatasetEvent(ctx, mock.AnythingOfType("*service.DatasetEvent")).
		Return(domainerrors.ErrUpstreamUnavailable)

	// The mutation already happened; a failed announcement must not surface.
	err := fx.service.DeleteVisit(ctx, "Jatim Park 1")
	require.NoError(t, err)
}

func TestVisitService_NilPublisher(t *testing.T) {
	visitRepo := mockRepo.NewMockVisitRepository(t)
	svc := NewVisitService(newTestConfig(), visitRepo, nil, newDiscardLogger())

	ctx := context.Background()
	visitRepo.EXPECT().
		Delete(ctx, "Jatim Park 1").
		Return(nil)

	err := svc.DeleteVisit(ctx, "Jatim Park 1")
	require.NoError(t, err)
}

func TestVisitService_UploadDataset_CSV(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	content := "wisata,rating,review_text,date\n" +
		"Jatim Park 1,5,Tempat bagus,2025-01-02\n" +
		"Museum Angkut,4,Antri panjang,2025-01-03\n"

	var published *service.DatasetEvent
	fx.publisher.EXPECT().
		PublishDatasetEvent(ctx, mock.AnythingOfType("*service.DatasetEvent")).
		Run(func(_ context.Context, event *service.DatasetEvent) {
			published = event
		}).
		Return(nil)

	output, err := fx.service.UploadDataset(ctx, usecase.UploadInput{
		Filename: "reviews.csv",
		Size:     int64(len(content)),
		Reader:   strings.NewReader(content),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, output.TotalRows)
	assert.NotEmpty(t, output.Checksum)

	require.NotNil(t, published)
	assert.Equal(t, service.DatasetActionUpload, published.Action)
	assert.Equal(t, 2, published.Rows)
}

func TestVisitService_UploadDataset_XLSX(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]any{"Wisata", "Rating", "Review_Text", "Date"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]any{"Jatim Park 1", 5, "Tempat bagus", "2025-01-02"}))
	var buf bytes.Buffer
	require.NoError(t, book.Write(&buf))

	fx.publisher.EXPECT().
		PublishDatasetEvent(ctx, mock.AnythingOfType("*service.DatasetEvent")).
		Return(nil)

	output, err := fx.service.UploadDataset(ctx, usecase.UploadInput{
		Filename: "reviews.xlsx",
		Size:     int64(buf.Len()),
		Reader:   &buf,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.TotalRows)
}

func TestVisitService_UploadDataset_MissingColumns(t *testing.T) {
	fx := createTestVisitService(t)

	content := "wisata,rating\nJatim Park 1,5\n"
	_, err := fx.service.UploadDataset(context.Background(), usecase.UploadInput{
		Filename: "reviews.csv",
		Size:     int64(len(content)),
		Reader:   strings.NewReader(content),
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingColumns)
}

func TestVisitService_UploadDataset_UnsupportedType(t *testing.T) {
	fx := createTestVisitService(t)

	_, err := fx.service.UploadDataset(context.Background(), usecase.UploadInput{
		Filename: "reviews.pdf",
		Size:     10,
		Reader:   strings.NewReader("not a table"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestVisitService_UploadDataset_TooLarge(t *testing.T) {
	fx := createTestVisitService(t)

	_, err := fx.service.UploadDataset(context.Background(), usecase.UploadInput{
		Filename: "reviews.csv",
		Size:     (50 << 20) + 1,
		Reader:   strings.NewReader(""),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
}

func TestVisitService_ExportVisits(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	fx.visitRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.VisitRecord{
			{Name: "Coban Rondo", Count: 100_000},
			{Name: "Jatim Park 1", Count: 1_200_000},
		}, nil)

	output, err := fx.service.ExportVisits(ctx)
	require.NoError(t, err)
	assert.Contains(t, output.Filename, "kunjungan_export_")
	assert.Equal(t, "text/csv", output.ContentType)

	lines := strings.Split(strings.TrimSpace(string(output.Content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "nama_wisata,jumlah_kunjungan", lines[0])

	// Highest counts first.
	assert.Equal(t, "Jatim Park 1,1200000", lines[1])
	assert.Equal(t, "Coban Rondo,100000", lines[2])
}

func TestVisitService_BackupData(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	fx.visitRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.VisitRecord{
			{Name: "Jatim Park 1", Count: 1_200_000},
		}, nil)

	output, err := fx.service.BackupData(ctx)
	require.NoError(t, err)
	assert.Contains(t, output.Filename, "backup_data_")
	assert.Equal(t, "application/zip", output.ContentType)

	archive, err := zip.NewReader(bytes.NewReader(output.Content), int64(len(output.Content)))
	require.NoError(t, err)
	require.Len(t, archive.File, 1)
	assert.Equal(t, "kunjungan_wisata.csv", archive.File[0].Name)
}

func TestVisitService_Template(t *testing.T) {
	fx := createTestVisitService(t)

	output, err := fx.service.Template(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "template_upload.xlsx", output.Filename)

	book, err := excelize.OpenReader(bytes.NewReader(output.Content))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"wisata", "rating", "review_text", "date"}, rows[0])
}
