package contract

import (
	"context"

	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/repository/specification"
)

// ClassroomItemRepository is read-only from this service's perspective;
// items are managed by the classroom product.
type ClassroomItemRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassroomItem, error)
}
