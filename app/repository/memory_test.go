package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/notepress/notepress/app/models"
)

type MemoryRepositorySuite struct {
	suite.Suite
	repos *Repositories
}

func (s *MemoryRepositorySuite) SetupTest() {
	s.repos = NewMemoryRepositories()
}

func TestMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositorySuite))
}

func (s *MemoryRepositorySuite) TestNewsCreateAndLookup() {
	news := &models.News{Title: "First", Content: "Text"}
	s.Require().NoError(s.repos.News.Create(news))
	s.NotZero(news.ID)

	found, err := s.repos.News.GetByID(news.ID)
	s.Require().NoError(err)
	s.Equal("First", found.Title)

	_, err = s.repos.News.GetByID(999)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *MemoryRepositorySuite) TestNewsHomeOrderAndCap() {
	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 1; i <= 11; i++ {
		n := &models.News{Title: "News", Content: "Text", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		s.Require().NoError(s.repos.News.Create(n))
	}

	home, err := s.repos.News.GetHome(10)
	s.Require().NoError(err)
	s.Len(home, 10)
	s.Equal(uint(11), home[0].ID)
}

func (s *MemoryRepositorySuite) TestNewsViewCounter() {
	news := &models.News{Title: "Counted", Content: "Text"}
	s.Require().NoError(s.repos.News.Create(news))
	s.Require().NoError(s.repos.News.AddViews(news.ID, 3))
	s.Require().NoError(s.repos.News.AddViews(news.ID, 2))

	found, err := s.repos.News.GetByID(news.ID)
	s.Require().NoError(err)
	s.Equal(int64(5), found.ViewCount)
}

func (s *MemoryRepositorySuite) TestNoteSlugUniqueness() {
	first := &models.Note{Title: "One", Content: "Text", Slug: "shared", UserID: 1}
	s.Require().NoError(s.repos.Note.Create(first))

	dup := &models.Note{Title: "Two", Content: "Text", Slug: "shared", UserID: 2}
	s.Require().ErrorIs(s.repos.Note.Create(dup), ErrDuplicateSlug)

	count, err := s.repos.Note.Count()
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *MemoryRepositorySuite) TestNoteUpdateKeepsSlugIndexConsistent() {
	note := &models.Note{Title: "One", Content: "Text", Slug: "before", UserID: 1}
	s.Require().NoError(s.repos.Note.Create(note))

	note.Slug = "after"
	s.Require().NoError(s.repos.Note.Update(note))

	_, err := s.repos.Note.GetBySlug("before")
	s.Require().ErrorIs(err, ErrNotFound)
	found, err := s.repos.Note.GetBySlug("after")
	s.Require().NoError(err)
	s.Equal(note.ID, found.ID)
}

func (s *MemoryRepositorySuite) TestNotesScopedToUser() {
	s.Require().NoError(s.repos.Note.Create(&models.Note{Title: "A", Content: "t", Slug: "a", UserID: 1}))
	s.Require().NoError(s.repos.Note.Create(&models.Note{Title: "B", Content: "t", Slug: "b", UserID: 2}))
	s.Require().NoError(s.repos.Note.Create(&models.Note{Title: "C", Content: "t", Slug: "c", UserID: 1}))

	mine, err := s.repos.Note.GetByUserID(1)
	s.Require().NoError(err)
	s.Len(mine, 2)
	for _, n := range mine {
		s.Equal(uint(1), n.UserID)
	}
}

func (s *MemoryRepositorySuite) TestCommentsChronological() {
	news := &models.News{Title: "News", Content: "Text"}
	s.Require().NoError(s.repos.News.Create(news))

	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	// Inserted newest first on purpose.
	c2 := &models.Comment{NewsID: news.ID, UserID: 1, Content: "c2", CreatedAt: base.Add(2 * time.Minute)}
	c1 := &models.Comment{NewsID: news.ID, UserID: 1, Content: "c1", CreatedAt: base.Add(1 * time.Minute)}
	s.Require().NoError(s.repos.Comment.Create(c2))
	s.Require().NoError(s.repos.Comment.Create(c1))

	got, err := s.repos.Comment.GetByNewsID(news.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("c1", got[0].Content)
	s.Equal("c2", got[1].Content)
}

func (s *MemoryRepositorySuite) TestUserLookupByEmail() {
	user := &models.User{Name: "Reader", Email: "reader@example.com", Password: "hash"}
	s.Require().NoError(s.repos.User.Create(user))

	found, err := s.repos.User.GetByEmail("reader@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repos.User.GetByEmail("nobody@example.com")
	s.Require().ErrorIs(err, ErrNotFound)
}
