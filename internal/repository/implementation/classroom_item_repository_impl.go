package implementation

import (
	"context"
	"errors"

	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/mapper"
	"learnz-tutor-be/internal/model"
	"learnz-tutor-be/internal/repository/contract"
	"learnz-tutor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ClassroomItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorMapper
}

func NewClassroomItemRepository(db *gorm.DB) contract.ClassroomItemRepository {
	return &ClassroomItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorMapper(),
	}
}

func (r *ClassroomItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// FindOne returns (nil, nil) on a lookup miss; the ask flow treats a
// missing item as a null association, not an error.
func (r *ClassroomItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassroomItem, error) {
	var m model.ClassroomItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ClassroomItemToEntity(&m), nil
}
