package service

import (
	"context"
	"fmt"
	"strings"

	"academy-chatbot-be/internal/constant"
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/internal/repository/contract"
)

type ITrainerService interface {
	SearchTrainers(ctx context.Context, keyword string) ([]*entity.Trainer, error)
	AllTrainers(ctx context.Context) ([]*entity.Trainer, error)
	FormatTrainerInfo(trainers []*entity.Trainer) string
	FormatSingleTrainer(trainer *entity.Trainer) string
}

type trainerService struct {
	repo   contract.TrainerRepository
	logger logger.ILogger
}

func NewTrainerService(repo contract.TrainerRepository, log logger.ILogger) ITrainerService {
	return &trainerService{repo: repo, logger: log}
}

func (s *trainerService) SearchTrainers(ctx context.Context, keyword string) ([]*entity.Trainer, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	return s.repo.SearchByKeyword(ctx, keyword)
}

func (s *trainerService) AllTrainers(ctx context.Context) ([]*entity.Trainer, error) {
	return s.repo.FindAll(ctx)
}

func (s *trainerService) FormatTrainerInfo(trainers []*entity.Trainer) string {
	if len(trainers) == 0 {
		return constant.ReplyNoTrainers
	}
	if len(trainers) == 1 {
		return s.FormatSingleTrainer(trainers[0])
	}

	var sb strings.Builder
	sb.WriteString("👨‍🏫 **Təlimçilərimiz:**\n\n")
	for i, trainer := range trainers {
		if i >= 5 {
			break
		}
		sb.WriteString(fmt.Sprintf("• **%s**\n", trainer.Name))
		if trainer.Position != "" {
			sb.WriteString(fmt.Sprintf("  %s", trainer.Position))
			if trainer.Location != "" {
				sb.WriteString(fmt.Sprintf(", %s", trainer.Location))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("📞 Ətraflı məlumat üçün: 051 341 43 40")
	return sb.String()
}

func (s *trainerService) FormatSingleTrainer(trainer *entity.Trainer) string {
	if trainer == nil {
		return constant.ReplyNoTrainers
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👨‍🏫 **%s**\n\n", trainer.Name))
	if trainer.Position != "" {
		sb.WriteString(fmt.Sprintf("💼 %s", trainer.Position))
		if trainer.Location != "" {
			sb.WriteString(fmt.Sprintf(", %s", trainer.Location))
		}
		sb.WriteString("\n\n")
	}
	if trainer.Bio != "" {
		sb.WriteString(trainer.Bio)
		sb.WriteString("\n\n")
	}
	sb.WriteString("📞 Təlimlər haqqında məlumat üçün: 051 341 43 40")
	return sb.String()
}
