// Package services содержит бизнес-логику работы с перевалами:
// проверку заявок, сохранение, кеширование карточек и публикацию событий модерации.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/pereval-api/internal/cache"
	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
	"github.com/magabrotheeeer/pereval-api/internal/metrics"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

// PassRepository определяет методы хранилища перевалов.
type PassRepository interface {
	// CreatePass сохраняет заявку и возвращает ID перевала.
	CreatePass(ctx context.Context, sub models.Submission) (int64, error)
	// GetPass возвращает перевал по ID.
	GetPass(ctx context.Context, id int64) (*models.Pass, error)
	// ListPassesByEmail возвращает перевалы пользователя.
	ListPassesByEmail(ctx context.Context, email string) ([]models.Pass, error)
	// UpdatePass частично обновляет перевал в статусе new.
	UpdatePass(ctx context.Context, id int64, upd models.PassUpdate) error
}

// Cache описывает методы для кеширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Publisher отправляет события о новых перевалах.
type Publisher interface {
	Publish(ctx context.Context, event models.SubmittedEvent) error
}

// Validator проверяет входные данные.
type Validator interface {
	Validate(sub models.Submission) map[string]string
	ValidateUpdate(upd models.PassUpdate) map[string]string
}

// Option настраивает PerevalService.
type Option func(*PerevalService)

// WithCache включает кеширование карточек перевалов на ttl.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *PerevalService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithPublisher включает публикацию событий о новых перевалах.
func WithPublisher(p Publisher) Option {
	return func(s *PerevalService) {
		s.publisher = p
	}
}

// PerevalService реализует операции над перевалами.
// Кеш и публикация событий необязательны: без них сервис работает только с хранилищем.
type PerevalService struct {
	repo      PassRepository
	validator Validator
	cache     Cache
	cacheTTL  time.Duration
	publisher Publisher
	log       *slog.Logger
	now       func() time.Time
}

// NewPerevalService создаёт сервис.
func NewPerevalService(repo PassRepository, validator Validator, log *slog.Logger, opts ...Option) *PerevalService {
	s := &PerevalService{
		repo:      repo,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit проверяет заявку и сохраняет перевал. Ошибки валидации возвращаются
// как *models.ValidationError, хранилище при этом не вызывается.
func (s *PerevalService) Submit(ctx context.Context, sub models.Submission) (int64, error) {
	const op = "services.Submit"

	if err := models.NewValidationError(s.validator.Validate(sub)); err != nil {
		return 0, err
	}

	id, err := s.repo.CreatePass(ctx, sub)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	metrics.RecordSubmission()
	s.log.Info("pass submitted", slog.Int64("id", id))

	s.publishSubmitted(ctx, id, sub)
	return id, nil
}

// publishSubmitted отправляет событие модерации. Перевал уже сохранён,
// поэтому ошибка публикации только логируется.
func (s *PerevalService) publishSubmitted(ctx context.Context, id int64, sub models.Submission) {
	if s.publisher == nil {
		return
	}
	event := models.SubmittedEvent{
		EventID:     uuid.NewString(),
		PassID:      id,
		Title:       sub.Title,
		Email:       sub.User.Email,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish submitted event",
			slog.Int64("id", id), slog.String("event_id", event.EventID), sl.Err(err))
	}
}

// Get возвращает перевал по ID, сначала из кеша, затем из хранилища.
func (s *PerevalService) Get(ctx context.Context, id int64) (*models.Pass, error) {
	const op = "services.Get"
	key := cache.PassKey(id)

	if s.cache != nil {
		var cached models.Pass
		found, err := s.cache.Get(ctx, key, &cached)
		switch {
		case err != nil:
			metrics.RecordCacheOperation("get", "error")
			s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
		case found:
			metrics.RecordCacheOperation("get", "hit")
			return &cached, nil
		default:
			metrics.RecordCacheOperation("get", "miss")
		}
	}

	pass, err := s.repo.GetPass(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, pass, s.cacheTTL); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
		}
	}
	return pass, nil
}

// ListByEmail возвращает перевалы пользователя, новые первыми.
func (s *PerevalService) ListByEmail(ctx context.Context, email string) ([]models.Pass, error) {
	const op = "services.ListByEmail"
	if email == "" {
		return nil, fmt.Errorf("%s: email is required: %w", op, models.ErrInvalid)
	}
	passes, err := s.repo.ListPassesByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return passes, nil
}

// Update проверяет переданные поля и обновляет перевал, затем сбрасывает его кеш.
func (s *PerevalService) Update(ctx context.Context, id int64, upd models.PassUpdate) error {
	const op = "services.Update"

	if err := models.NewValidationError(s.validator.ValidateUpdate(upd)); err != nil {
		return err
	}
	if err := s.repo.UpdatePass(ctx, id, upd); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		key := cache.PassKey(id)
		if err := s.cache.Invalidate(ctx, key); err != nil {
			s.log.Warn("failed to remove from cache", slog.String("key", key), sl.Err(err))
		}
	}
	s.log.Info("pass updated", slog.Int64("id", id))
	return nil
}
