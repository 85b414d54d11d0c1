// Package model holds the GORM persistence models and their mapping to
// domain entities. Models never leak past the repository layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"batulens/internal/domain/entity"
)

// VisitModel maps the kunjungan_wisata table.
type VisitModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:nama_wisata;uniqueIndex;not null"`
	Count     int64     `gorm:"column:jumlah_kunjungan;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName implements the GORM table-name convention.
func (VisitModel) TableName() string {
	return "kunjungan_wisata"
}

// ToEntity maps the persistence model to a domain entity.
func (m *VisitModel) ToEntity() *entity.VisitRecord {
	return &entity.VisitRecord{
		Name:      m.Name,
		Count:     m.Count,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// VisitFromEntity maps a domain entity to the persistence model.
func VisitFromEntity(record *entity.VisitRecord) *VisitModel {
	return &VisitModel{
		Name:  record.Name,
		Count: record.Count,
	}
}

// UserModel maps the users table.
type UserModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Name         string    `gorm:"column:name"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null;default:user"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName implements the GORM table-name convention.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity maps the persistence model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserFromEntity maps a domain entity to the persistence model.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	}
}
