package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/GulizarHanum/Birthday/internal/model"
	"github.com/GulizarHanum/Birthday/internal/repository"
	view "github.com/GulizarHanum/Birthday/pkg/model"
)

// Service implements the business rules for birthday records on top of a Store.
type Service struct {
	store repository.Store
	now   func() time.Time
	log   zerolog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces the clock that determines "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the logger for mutations. By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.log = logger
	}
}

// New creates a Service that keeps its records in store.
func New(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetByID returns the birthday with the given id. An unknown id is not an error: the result
// is then an empty Birthday. An id of zero counts as missing.
func (s *Service) GetByID(ctx context.Context, id int64) (view.Birthday, error) {
	if id == 0 {
		return view.Birthday{}, invalidArgument("id is missing")
	}
	b, err := s.store.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return view.Birthday{}, nil
	}
	if err != nil {
		return view.Birthday{}, err
	}
	return toView(b), nil
}

// ListAll returns all birthdays.
func (s *Service) ListAll(ctx context.Context) ([]view.Birthday, error) {
	birthdays, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]view.Birthday, 0, len(birthdays))
	for _, b := range birthdays {
		views = append(views, toView(b))
	}
	return views, nil
}

// ListUpcoming returns the birthdays that are celebrated within the next UpcomingDays days,
// today included.
func (s *Service) ListUpcoming(ctx context.Context) ([]view.Birthday, error) {
	birthdays, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	today := civilDate(s.now())
	views := []view.Birthday{}
	for _, b := range birthdays {
		if IsUpcoming(b.Date, today) {
			views = append(views, toView(b))
		}
	}
	return views, nil
}

// Add validates and stores a new birthday. A submitted id is ignored.
func (s *Service) Add(ctx context.Context, b view.Birthday) error {
	record, err := s.toRecord(b)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, &record); err != nil {
		return err
	}
	s.log.Info().Int64("id", record.Id).Msg("birthday added")
	return nil
}

// Edit validates the submitted birthday and overwrites name, date, role and photo of the
// stored birthday with the same id. Fields are not merged: a missing photo removes the stored
// one.
func (s *Service) Edit(ctx context.Context, b view.Birthday) (view.Birthday, error) {
	record, err := s.toRecord(b)
	if err != nil {
		return view.Birthday{}, err
	}
	if b.Id == nil || *b.Id == 0 {
		return view.Birthday{}, invalidArgument("id is missing")
	}
	id := *b.Id
	if _, err := s.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return view.Birthday{}, notFound(id)
		}
		return view.Birthday{}, err
	}
	record.Id = id
	if err := s.store.Save(ctx, &record); err != nil {
		return view.Birthday{}, err
	}
	s.log.Info().Int64("id", id).Msg("birthday edited")
	return toView(record), nil
}

// DeleteByID removes the birthday with the given id.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if id == 0 {
		return invalidArgument("id is missing")
	}
	if _, err := s.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(id)
		}
		return err
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		// the record may have been deleted concurrently
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(id)
		}
		return err
	}
	s.log.Info().Int64("id", id).Msg("birthday deleted")
	return nil
}

// toRecord validates b and converts it into a record without id.
func (s *Service) toRecord(b view.Birthday) (model.Birthday, error) {
	c, err := validate(b, s.now())
	if err != nil {
		return model.Birthday{}, err
	}
	record := model.Birthday{Name: c.name, Date: c.date, Role: c.role}
	if b.Photo != nil {
		photo, err := DecodePhoto(*b.Photo)
		if err != nil {
			return model.Birthday{}, err
		}
		record.Photo = photo
	}
	return record, nil
}

// toView converts a stored record into its REST API representation.
func toView(b model.Birthday) view.Birthday {
	id := b.Id
	name := b.Name
	date := b.Date.Format(DateLayout)
	role := b.Role.String()
	v := view.Birthday{Id: &id, Name: &name, Date: &date, Role: &role}
	if b.Photo != nil {
		photo := EncodePhoto(b.Photo)
		v.Photo = &photo
	}
	return v
}
