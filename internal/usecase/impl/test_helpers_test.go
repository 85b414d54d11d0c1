package impl

import (
	"io"
	"log/slog"

	"batulens/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Visit: &config.VisitConfig{
			HighThreshold:   1_000_000,
			MediumThreshold: 500_000,
		},
		Upload: &config.UploadConfig{
			MaxBytes: 50 << 20,
		},
	}
}
