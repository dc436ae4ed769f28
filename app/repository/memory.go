package repository

import (
	"sync"
	"time"

	"github.com/notepress/notepress/app/models"
	"github.com/notepress/notepress/internal/pkg/listing"
)

// In-memory repository implementations. They mirror the SQL semantics —
// same not-found sentinel, same unique-slug enforcement, same ordering
// via the listing policy — and back the service tests and the
// database-less dev mode.

// memoryNewsRepository implements NewsRepository in memory
type memoryNewsRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]models.News
}

// NewMemoryNewsRepository creates an in-memory news repository
func NewMemoryNewsRepository() NewsRepository {
	return &memoryNewsRepository{nextID: 1, items: make(map[uint]models.News)}
}

func (r *memoryNewsRepository) Create(news *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	news.ID = r.nextID
	r.nextID++
	if news.CreatedAt.IsZero() {
		news.CreatedAt = time.Now()
	}
	r.items[news.ID] = *news
	return nil
}

func (r *memoryNewsRepository) GetByID(id uint) (*models.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (r *memoryNewsRepository) GetHome(limit int) ([]models.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return listing.NewsHome(r.all(), limit), nil
}

func (r *memoryNewsRepository) GetAll(offset, limit int) ([]models.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ordered := listing.NewsHome(r.all(), len(r.items))
	if offset >= len(ordered) {
		return nil, nil
	}
	ordered = ordered[offset:]
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered, nil
}

func (r *memoryNewsRepository) Update(news *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[news.ID]; !ok {
		return ErrNotFound
	}
	r.items[news.ID] = *news
	return nil
}

func (r *memoryNewsRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memoryNewsRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *memoryNewsRepository) AddViews(id uint, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	n.ViewCount += delta
	r.items[id] = n
	return nil
}

func (r *memoryNewsRepository) all() []models.News {
	out := make([]models.News, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, n)
	}
	return out
}

// memoryNoteRepository implements NoteRepository in memory
type memoryNoteRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]models.Note
	slugs  map[string]uint
}

// NewMemoryNoteRepository creates an in-memory note repository
func NewMemoryNoteRepository() NoteRepository {
	return &memoryNoteRepository{
		nextID: 1,
		items:  make(map[uint]models.Note),
		slugs:  make(map[string]uint),
	}
}

func (r *memoryNoteRepository) Create(note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.slugs[note.Slug]; taken {
		return ErrDuplicateSlug
	}
	note.ID = r.nextID
	r.nextID++
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	r.items[note.ID] = *note
	r.slugs[note.Slug] = note.ID
	return nil
}

func (r *memoryNoteRepository) GetByID(id uint) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (r *memoryNoteRepository) GetBySlug(slug string) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.slugs[slug]
	if !ok {
		return nil, ErrNotFound
	}
	n := r.items[id]
	return &n, nil
}

func (r *memoryNoteRepository) GetByUserID(userID uint) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]models.Note, 0, len(r.items))
	for _, n := range r.items {
		all = append(all, n)
	}
	return listing.OwnNotes(all, userID), nil
}

func (r *memoryNoteRepository) Slugs() (map[string]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := make(map[string]struct{}, len(r.slugs))
	for s := range r.slugs {
		set[s] = struct{}{}
	}
	return set, nil
}

func (r *memoryNoteRepository) SlugExists(slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.slugs[slug]
	return ok, nil
}

func (r *memoryNoteRepository) Update(note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[note.ID]
	if !ok {
		return ErrNotFound
	}
	if owner, taken := r.slugs[note.Slug]; taken && owner != note.ID {
		return ErrDuplicateSlug
	}
	if current.Slug != note.Slug {
		delete(r.slugs, current.Slug)
		r.slugs[note.Slug] = note.ID
	}
	r.items[note.ID] = *note
	return nil
}

func (r *memoryNoteRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.items[id]; ok {
		delete(r.slugs, n.Slug)
		delete(r.items, id)
	}
	return nil
}

func (r *memoryNoteRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// memoryCommentRepository implements CommentRepository in memory
type memoryCommentRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]models.Comment
}

// NewMemoryCommentRepository creates an in-memory comment repository
func NewMemoryCommentRepository() CommentRepository {
	return &memoryCommentRepository{nextID: 1, items: make(map[uint]models.Comment)}
}

func (r *memoryCommentRepository) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.nextID
	r.nextID++
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	r.items[comment.ID] = *comment
	return nil
}

func (r *memoryCommentRepository) GetByID(id uint) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memoryCommentRepository) GetByNewsID(newsID uint) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]models.Comment, 0)
	for _, c := range r.items {
		if c.NewsID == newsID {
			matched = append(matched, c)
		}
	}
	return listing.Comments(matched), nil
}

func (r *memoryCommentRepository) Update(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[comment.ID]; !ok {
		return ErrNotFound
	}
	r.items[comment.ID] = *comment
	return nil
}

func (r *memoryCommentRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memoryCommentRepository) CountByNewsID(newsID uint) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, c := range r.items {
		if c.NewsID == newsID {
			count++
		}
	}
	return count, nil
}

func (r *memoryCommentRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// memoryUserRepository implements UserRepository in memory
type memoryUserRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]models.User
}

// NewMemoryUserRepository creates an in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{nextID: 1, items: make(map[uint]models.User)}
}

func (r *memoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	r.items[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.ID]; !ok {
		return ErrNotFound
	}
	r.items[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}
