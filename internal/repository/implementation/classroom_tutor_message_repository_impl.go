package implementation

import (
	"context"

	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/mapper"
	"learnz-tutor-be/internal/model"
	"learnz-tutor-be/internal/repository/contract"
	"learnz-tutor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ClassroomTutorMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorMapper
}

func NewClassroomTutorMessageRepository(db *gorm.DB) contract.ClassroomTutorMessageRepository {
	return &ClassroomTutorMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorMapper(),
	}
}

func (r *ClassroomTutorMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClassroomTutorMessageRepositoryImpl) Create(ctx context.Context, message *entity.ClassroomTutorMessage) error {
	m := r.mapper.ClassroomTutorMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ClassroomTutorMessageToEntity(m)
	return nil
}

func (r *ClassroomTutorMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassroomTutorMessage, error) {
	var models []*model.ClassroomTutorMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ClassroomTutorMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ClassroomTutorMessageToEntity(m)
	}
	return entities, nil
}

func (r *ClassroomTutorMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ClassroomTutorMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
