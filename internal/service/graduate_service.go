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

type IGraduateService interface {
	SearchGraduates(ctx context.Context, keyword string) ([]*entity.Graduate, error)
	AllGraduates(ctx context.Context) ([]*entity.Graduate, error)
	// RandomSuccessStories returns up to count graduates in random order, for
	// the "success stories" reply.
	RandomSuccessStories(ctx context.Context, count int) ([]*entity.Graduate, error)
	FormatGraduateInfo(graduates []*entity.Graduate) string
}

type graduateService struct {
	repo   contract.GraduateRepository
	logger logger.ILogger
}

func NewGraduateService(repo contract.GraduateRepository, log logger.ILogger) IGraduateService {
	return &graduateService{repo: repo, logger: log}
}

func (s *graduateService) SearchGraduates(ctx context.Context, keyword string) ([]*entity.Graduate, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	return s.repo.SearchByKeyword(ctx, keyword)
}

func (s *graduateService) AllGraduates(ctx context.Context) ([]*entity.Graduate, error) {
	return s.repo.FindAll(ctx)
}

func (s *graduateService) RandomSuccessStories(ctx context.Context, count int) ([]*entity.Graduate, error) {
	if count <= 0 {
		return nil, nil
	}
	return s.repo.FindRandom(ctx, count)
}

func (s *graduateService) FormatGraduateInfo(graduates []*entity.Graduate) string {
	if len(graduates) == 0 {
		return constant.ReplyNoGraduates
	}

	var sb strings.Builder
	sb.WriteString("🎓 **Məzunlarımızın uğur hekayələri:**\n\n")
	for _, graduate := range graduates {
		sb.WriteString(fmt.Sprintf("• **%s**\n", graduate.Name))
		if graduate.WorkPosition != "" {
			sb.WriteString(fmt.Sprintf("  💼 %s", graduate.WorkPosition))
			if graduate.WorkLocation != "" {
				sb.WriteString(fmt.Sprintf(", %s", graduate.WorkLocation))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Siz də onlara qoşula bilərsiniz!\n📞 Qeydiyyat: 051 341 43 40")
	return sb.String()
}
