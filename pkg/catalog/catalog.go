// Package catalog links trainings with their descriptive course texts. The
// link table rarely changes, so the whole mapping is built once and served
// from memory until invalidated.
package catalog

import (
	"context"
	"sync"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/repository/contract"
)

type Catalog struct {
	trainings contract.TrainingRepository
	texts     contract.CourseTextRepository

	mu             sync.RWMutex
	textByTraining map[int64]*entity.CourseText
	loaded         bool
}

func New(trainings contract.TrainingRepository, texts contract.CourseTextRepository) *Catalog {
	return &Catalog{
		trainings: trainings,
		texts:     texts,
	}
}

// TextForTraining returns the course text linked to the training, or nil when
// none is linked.
func (c *Catalog) TextForTraining(ctx context.Context, training *entity.Training) (*entity.CourseText, error) {
	if training == nil {
		return nil, nil
	}
	return c.TextForTrainingId(ctx, training.Id)
}

func (c *Catalog) TextForTrainingId(ctx context.Context, trainingId int64) (*entity.CourseText, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.textByTraining[trainingId], nil
}

// TrainingForText resolves the training a course text belongs to, nil when
// the text is free-standing.
func (c *Catalog) TrainingForText(ctx context.Context, text *entity.CourseText) (*entity.Training, error) {
	if text == nil || text.TrainingId == nil {
		return nil, nil
	}
	return c.trainings.FindById(ctx, *text.TrainingId)
}

// Invalidate drops the snapshot; the next lookup rebuilds it wholesale.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textByTraining = nil
	c.loaded = false
}

func (c *Catalog) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}

	texts, err := c.texts.FindAll(ctx)
	if err != nil {
		return err
	}

	mapping := make(map[int64]*entity.CourseText, len(texts))
	for _, text := range texts {
		if text.TrainingId != nil {
			mapping[*text.TrainingId] = text
		}
	}

	c.textByTraining = mapping
	c.loaded = true
	return nil
}
