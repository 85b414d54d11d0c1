package postgres

import (
	"context"

	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	"batulens/internal/domain/repository"
	"batulens/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements repository.VisitRepository using GORM.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// ListAll returns every visit record sorted by name. The stable order keeps
// reconciliation deterministic run to run.
func (repo *visitRepository) ListAll(ctx context.Context) ([]*entity.VisitRecord, error) {
	var models []*model.VisitModel
	if err := repo.db.WithContext(ctx).
		Order("nama_wisata ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visit records")
	}

	records := make([]*entity.VisitRecord, 0, len(models))
	for _, m := range models {
		records = append(records, m.ToEntity())
	}

	return records, nil
}

// FindByName retrieves a single record by its exact nama_wisata.
func (repo *visitRepository) FindByName(ctx context.Context, name string) (*entity.VisitRecord, error) {
	var m model.VisitModel
	if err := repo.db.WithContext(ctx).
		Where("nama_wisata = ?", name).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit record by name")
	}

	return m.ToEntity(), nil
}

// Create persists a new visit record.
func (repo *visitRepository) Create(ctx context.Context, record *entity.VisitRecord) error {
	m := model.VisitFromEntity(record)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrWisataAlreadyExists.WrapMessage("nama_wisata already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit record")
	}

	record.CreatedAt = m.CreatedAt
	record.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies the count of an existing record.
func (repo *visitRepository) Update(ctx context.Context, record *entity.VisitRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("nama_wisata = ?", record.Name).
		Update("jumlah_kunjungan", record.Count)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update visit record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// Delete removes the record with the given name.
func (repo *visitRepository) Delete(ctx context.Context, name string) error {
	result := repo.db.WithContext(ctx).
		Where("nama_wisata = ?", name).
		Delete(&model.VisitModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete visit record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}
