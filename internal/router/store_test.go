package router

import (
	"context"
	"sync"
	"time"

	"github.com/fliprhq/flipr-cms/internal/model"
	"github.com/fliprhq/flipr-cms/internal/repository"
)

// In-memory stores standing in for the pgx repositories. Listing order
// matches the repositories: newest first.

type memProjectStore struct {
	mu     sync.Mutex
	nextID int
	rows   []model.Project
}

func (s *memProjectStore) Create(_ context.Context, p *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	p.CreatedAt = time.Now()
	s.rows = append(s.rows, *p)
	return nil
}

func (s *memProjectStore) List(_ context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Project, 0, len(s.rows))
	for i := len(s.rows) - 1; i >= 0; i-- {
		out = append(out, s.rows[i])
	}
	return out, nil
}

func (s *memProjectStore) GetByID(_ context.Context, id int) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.rows {
		if p.ID == id {
			row := p
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memProjectStore) Update(_ context.Context, p *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == p.ID {
			p.CreatedAt = s.rows[i].CreatedAt
			s.rows[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memProjectStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memClientStore struct {
	mu     sync.Mutex
	nextID int
	rows   []model.Client
}

func (s *memClientStore) Create(_ context.Context, c *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	c.CreatedAt = time.Now()
	s.rows = append(s.rows, *c)
	return nil
}

func (s *memClientStore) List(_ context.Context) ([]model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Client, 0, len(s.rows))
	for i := len(s.rows) - 1; i >= 0; i-- {
		out = append(out, s.rows[i])
	}
	return out, nil
}

func (s *memClientStore) GetByID(_ context.Context, id int) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.rows {
		if c.ID == id {
			row := c
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memClientStore) Update(_ context.Context, c *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == c.ID {
			c.CreatedAt = s.rows[i].CreatedAt
			s.rows[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memClientStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memContactStore struct {
	mu     sync.Mutex
	nextID int
	rows   []model.Contact
}

func (s *memContactStore) Create(_ context.Context, c *model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	c.CreatedAt = time.Now()
	s.rows = append(s.rows, *c)
	return nil
}

func (s *memContactStore) List(_ context.Context) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Contact, 0, len(s.rows))
	for i := len(s.rows) - 1; i >= 0; i-- {
		out = append(out, s.rows[i])
	}
	return out, nil
}

func (s *memContactStore) GetByID(_ context.Context, id int) (*model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.rows {
		if c.ID == id {
			row := c
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memContactStore) Update(_ context.Context, c *model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == c.ID {
			c.CreatedAt = s.rows[i].CreatedAt
			s.rows[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memContactStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memSubscriberStore struct {
	mu     sync.Mutex
	nextID int
	rows   []model.Subscriber
}

func (s *memSubscriberStore) Create(_ context.Context, sub *model.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.Email == sub.Email {
			return repository.ErrDuplicateEmail
		}
	}
	s.nextID++
	sub.ID = s.nextID
	sub.CreatedAt = time.Now()
	s.rows = append(s.rows, *sub)
	return nil
}

func (s *memSubscriberStore) List(_ context.Context) ([]model.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Subscriber, 0, len(s.rows))
	for i := len(s.rows) - 1; i >= 0; i-- {
		out = append(out, s.rows[i])
	}
	return out, nil
}

func (s *memSubscriberStore) GetByID(_ context.Context, id int) (*model.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.ID == id {
			sub := row
			return &sub, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memSubscriberStore) GetByEmail(_ context.Context, email string) (*model.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.Email == email {
			sub := row
			return &sub, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memSubscriberStore) Update(_ context.Context, sub *model.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.Email == sub.Email && row.ID != sub.ID {
			return repository.ErrDuplicateEmail
		}
	}
	for i := range s.rows {
		if s.rows[i].ID == sub.ID {
			sub.CreatedAt = s.rows[i].CreatedAt
			s.rows[i] = *sub
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memSubscriberStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
