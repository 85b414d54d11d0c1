package entity

import "time"

// VisitRecord is an admin-managed mapping from a destination name to its
// yearly visitor count. Names follow the kunjungan dataset, so they may
// diverge from the names the analytics pipeline reports; reconciliation
// bridges the two.
type VisitRecord struct {
	Name      string    // nama_wisata, unique
	Count     int64     // jumlah_kunjungan
	CreatedAt time.Time
	UpdatedAt time.Time
}
