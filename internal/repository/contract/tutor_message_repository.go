package contract

import (
	"context"

	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/repository/specification"
)

// TutorMessageRepository stores the globally-scoped conversation. The store
// is append-only: there is no update or delete.
type TutorMessageRepository interface {
	Create(ctx context.Context, message *entity.TutorMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
