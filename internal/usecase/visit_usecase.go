package usecase

import (
	"context"
	"io"

	"batulens/internal/domain/entity"
)

// VisitInput is the payload for creating or updating a visit record.
type VisitInput struct {
	NamaWisata      string `json:"nama_wisata" validate:"required"`
	JumlahKunjungan int64  `json:"jumlah_kunjungan" validate:"min=0"`
}

// UploadInput describes an uploaded review dataset file.
type UploadInput struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// UploadOutput reports how many rows the uploaded file contained.
type UploadOutput struct {
	Filename  string `json:"filename"`
	TotalRows int    `json:"total_rows"`
	Checksum  string `json:"checksum"`
}

// ExportOutput carries a generated file for the client to download.
type ExportOutput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// VisitUsecase manages the locally owned visit counts and dataset files.
type VisitUsecase interface {
	ListVisits(ctx context.Context) ([]*entity.VisitRecord, error)
	AddVisit(ctx context.Context, input VisitInput) (*entity.VisitRecord, error)
	UpdateVisit(ctx context.Context, input VisitInput) (*entity.VisitRecord, error)
	DeleteVisit(ctx context.Context, name string) error

	// UploadDataset validates an uploaded review file (CSV or Excel),
	// checks the required columns, and announces the new dataset.
	UploadDataset(ctx context.Context, input UploadInput) (*UploadOutput, error)

	// ExportVisits renders the visit records as a CSV download sorted by
	// visit count descending.
	ExportVisits(ctx context.Context) (*ExportOutput, error)

	// BackupData bundles the visit records into a zip archive.
	BackupData(ctx context.Context) (*ExportOutput, error)

	// Template returns the upload template file.
	Template(ctx context.Context) (*ExportOutput, error)
}
