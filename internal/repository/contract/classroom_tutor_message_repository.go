package contract

import (
	"context"

	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/repository/specification"
)

type ClassroomTutorMessageRepository interface {
	Create(ctx context.Context, message *entity.ClassroomTutorMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassroomTutorMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
