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

type TutorMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorMapper
}

func NewTutorMessageRepository(db *gorm.DB) contract.TutorMessageRepository {
	return &TutorMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorMapper(),
	}
}

func (r *TutorMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TutorMessageRepositoryImpl) Create(ctx context.Context, message *entity.TutorMessage) error {
	m := r.mapper.TutorMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.TutorMessageToEntity(m)
	return nil
}

func (r *TutorMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorMessage, error) {
	var models []*model.TutorMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TutorMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TutorMessageToEntity(m)
	}
	return entities, nil
}

func (r *TutorMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TutorMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
