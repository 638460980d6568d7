package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/pkg/ai"
)

// noopLogger keeps test output quiet.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

var testLogger logger.ILogger = noopLogger{}

// fakeProvider stubs the chat-completion backend. The default (zero value)
// fails every call, which exercises all the degradation paths.
type fakeProvider struct {
	generateFunc func(prompt string) (string, error)
	calls        int
}

func (p *fakeProvider) Chat(_ context.Context, history []ai.Message, _ ...ai.Option) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty history")
	}
	return p.Generate(context.Background(), history[len(history)-1].Content)
}

func (p *fakeProvider) Generate(_ context.Context, prompt string, _ ...ai.Option) (string, error) {
	p.calls++
	if p.generateFunc == nil {
		return "", errors.New("provider unavailable")
	}
	return p.generateFunc(prompt)
}

type fakeFaqRepo struct {
	faqs []*entity.Faq
}

func (r *fakeFaqRepo) SearchByKeyword(_ context.Context, keyword string) ([]*entity.Faq, error) {
	var out []*entity.Faq
	for _, f := range r.faqs {
		if containsFold(f.Question+" "+f.Answer, keyword) {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeTextRepo struct {
	texts []*entity.CourseText
}

func (r *fakeTextRepo) SearchByKeyword(_ context.Context, keyword string) ([]*entity.CourseText, error) {
	var out []*entity.CourseText
	for _, t := range r.texts {
		if containsFold(t.Title+" "+t.Description+" "+t.Information, keyword) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTextRepo) FindAll(_ context.Context) ([]*entity.CourseText, error) {
	return r.texts, nil
}

func (r *fakeTextRepo) FindByTrainingId(_ context.Context, trainingId int64) (*entity.CourseText, error) {
	for _, t := range r.texts {
		if t.TrainingId != nil && *t.TrainingId == trainingId {
			return t, nil
		}
	}
	return nil, nil
}

type fakeTrainingRepo struct {
	trainings []*entity.Training
}

func (r *fakeTrainingRepo) SearchByKeyword(_ context.Context, keyword string) ([]*entity.Training, error) {
	var out []*entity.Training
	for _, t := range r.trainings {
		if containsFold(t.Title, keyword) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTrainingRepo) FindAllActive(_ context.Context) ([]*entity.Training, error) {
	var out []*entity.Training
	for _, t := range r.trainings {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTrainingRepo) FindById(_ context.Context, id int64) (*entity.Training, error) {
	for _, t := range r.trainings {
		if t.Id == id {
			return t, nil
		}
	}
	return nil, nil
}

type fakeTrainerRepo struct {
	trainers []*entity.Trainer
}

func (r *fakeTrainerRepo) SearchByKeyword(_ context.Context, keyword string) ([]*entity.Trainer, error) {
	var out []*entity.Trainer
	for _, t := range r.trainers {
		if containsFold(t.Name+" "+t.Position+" "+t.Bio, keyword) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTrainerRepo) FindAll(_ context.Context) ([]*entity.Trainer, error) {
	return r.trainers, nil
}

type fakeGraduateRepo struct {
	graduates []*entity.Graduate
}

func (r *fakeGraduateRepo) SearchByKeyword(_ context.Context, keyword string) ([]*entity.Graduate, error) {
	var out []*entity.Graduate
	for _, g := range r.graduates {
		if containsFold(g.Name+" "+g.WorkPosition+" "+g.WorkLocation, keyword) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGraduateRepo) FindAll(_ context.Context) ([]*entity.Graduate, error) {
	return r.graduates, nil
}

func (r *fakeGraduateRepo) FindRandom(_ context.Context, count int) ([]*entity.Graduate, error) {
	if count > len(r.graduates) {
		count = len(r.graduates)
	}
	return r.graduates[:count], nil
}

type fakeLeadRepo struct {
	leads   []*entity.Lead
	nextId  int64
	failing bool
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *entity.Lead) (*entity.Lead, error) {
	if r.failing {
		return nil, errors.New("insert failed")
	}
	r.nextId++
	saved := *lead
	saved.Id = r.nextId
	saved.CreatedAt = time.Now()
	r.leads = append(r.leads, &saved)
	return &saved, nil
}

func (r *fakeLeadRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for _, l := range r.leads {
		if l.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeadRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, l := range r.leads {
		if !l.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
