package cms

import (
	"time"

	"github.com/google/uuid"
)

// BlogCategory groups posts, with the same advisory linkage as shop
// categories.
type BlogCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBlogCategory(name, description string) BlogCategory {
	return BlogCategory{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

func (c BlogCategory) Key() string { return c.ID }
func (c BlogCategory) Created() time.Time { return c.CreatedAt }

type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	CategoryID string    `json:"category_id"`
	Author     string    `json:"author"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewPost builds a draft: posts are born unpublished.
func NewPost(title, content, excerpt, categoryID, author string) Post {
	now := time.Now().UTC()
	return Post{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		Excerpt:    excerpt,
		CategoryID: categoryID,
		Author:     author,
		Published:  false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Update replaces the content fields; the publish flag is untouched.
func (p *Post) Update(title, content, excerpt string) {
	p.Title = title
	p.Content = content
	p.Excerpt = excerpt
	p.UpdatedAt = time.Now().UTC()
}

// Publish makes the post visible. Publishing an already-published post
// still refreshes the update timestamp.
func (p *Post) Publish() {
	p.Published = true
	p.UpdatedAt = time.Now().UTC()
}

// Unpublish hides the post again; same timestamp rule as Publish.
func (p *Post) Unpublish() {
	p.Published = false
	p.UpdatedAt = time.Now().UTC()
}

func (p Post) Key() string { return p.ID }
func (p Post) Created() time.Time { return p.CreatedAt }
