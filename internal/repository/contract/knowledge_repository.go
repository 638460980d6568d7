package contract

import (
	"context"

	"academy-chatbot-be/internal/entity"
)

type FaqRepository interface {
	SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Faq, error)
}

type CourseTextRepository interface {
	SearchByKeyword(ctx context.Context, keyword string) ([]*entity.CourseText, error)
	FindAll(ctx context.Context) ([]*entity.CourseText, error)
	FindByTrainingId(ctx context.Context, trainingId int64) (*entity.CourseText, error)
}

type TrainingRepository interface {
	SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Training, error)
	FindAllActive(ctx context.Context) ([]*entity.Training, error)
	FindById(ctx context.Context, id int64) (*entity.Training, error)
}

type TrainerRepository interface {
	SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Trainer, error)
	FindAll(ctx context.Context) ([]*entity.Trainer, error)
}

type GraduateRepository interface {
	SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Graduate, error)
	FindAll(ctx context.Context) ([]*entity.Graduate, error)
	FindRandom(ctx context.Context, count int) ([]*entity.Graduate, error)
}
