package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"fitbyte-be/internal/cache"
	"fitbyte-be/internal/entities"
	"fitbyte-be/internal/events"
	"fitbyte-be/internal/repository"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
	creates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if _, ok := r.byEmail[email]; ok {
		return nil, repository.ErrDuplicateEmail
	}
	now := time.Now()
	user := &entities.User{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	r.byID[user.ID] = user
	r.byEmail[email] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id string, update repository.ProfileUpdate) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Preference = &update.Preference
	user.WeightUnit = &update.WeightUnit
	user.HeightUnit = &update.HeightUnit
	if update.Weight != nil {
		user.Weight = update.Weight
	}
	if update.Height != nil {
		user.Height = update.Height
	}
	if update.Name != nil {
		user.Name = update.Name
	}
	if update.ImageURI != nil {
		user.ImageURI = update.ImageURI
	}
	copied := *user
	return &copied, nil
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities map[string]*entities.Activity
	lastFilter repository.ActivityFilter
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[string]*entities.Activity)}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *entities.Activity) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *activity
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.activities[created.ID] = &created
	out := created
	return &out, nil
}

func (r *fakeActivityRepo) FindByID(_ context.Context, activityID, userID string) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	activity, ok := r.activities[activityID]
	if !ok || activity.UserID != userID {
		return nil, repository.ErrNotFound
	}
	out := *activity
	return &out, nil
}

func (r *fakeActivityRepo) List(_ context.Context, userID string, filter repository.ActivityFilter) ([]*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	var out []*entities.Activity
	for _, activity := range r.activities {
		if activity.UserID == userID {
			copied := *activity
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) Update(_ context.Context, activity *entities.Activity) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.activities[activity.ID]
	if !ok || existing.UserID != activity.UserID {
		return nil, repository.ErrNotFound
	}
	updated := *activity
	updated.UpdatedAt = time.Now()
	r.activities[activity.ID] = &updated
	out := updated
	return &out, nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, activityID, userID string) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	activity, ok := r.activities[activityID]
	if !ok || activity.UserID != userID {
		return nil, repository.ErrNotFound
	}
	delete(r.activities, activityID)
	return activity, nil
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func (c *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(data), expiration)
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	value, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dest)
}

func (c *memoryCache) Close() error { return nil }

type recordingPublisher struct {
	mu      sync.Mutex
	events  []events.ActivityEvent
	ctxErrs []error
	err     error
}

func (p *recordingPublisher) PublishActivity(ctx context.Context, event events.ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	p.ctxErrs = append(p.ctxErrs, ctx.Err())
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, event := range p.events {
		out = append(out, event.EventType)
	}
	return out
}

type fakeStorage struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (s *fakeStorage) Upload(_ context.Context, key, contentType string, body io.Reader, _ int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.key, s.contentType, s.body = key, contentType, data
	return "https://bucket.s3.example.com/" + key, nil
}

var errBoom = errors.New("boom")
