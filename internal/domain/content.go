package domain

import "context"

// Content draft pipeline stages. Any transition is allowed; the stages are
// a convention, not an enforced state machine.
const (
	DraftStatusDraft     = "draft"
	DraftStatusReview    = "review"
	DraftStatusApproved  = "approved"
	DraftStatusPublished = "published"
)

// ContentDraft is a piece of content moving through the publishing pipeline.
type ContentDraft struct {
	ID           string   `json:"id" bson:"_id"`
	Title        string   `json:"title" bson:"title"`
	Content      string   `json:"content" bson:"content"`
	Platform     string   `json:"platform" bson:"platform"`
	Status       string   `json:"status" bson:"status"`
	ScheduledFor int64    `json:"scheduledFor,omitempty" bson:"scheduledFor,omitempty"`
	PublishedAt  int64    `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	Tags         []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Author       string   `json:"author,omitempty" bson:"author,omitempty"`
	CreatedAt    int64    `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64    `json:"updatedAt" bson:"updatedAt"`
}

// ContentDraftCreate is the input shape for creating a content draft.
type ContentDraftCreate struct {
	Title        string   `json:"title" validate:"required"`
	Content      string   `json:"content" validate:"required"`
	Platform     string   `json:"platform" validate:"required"`
	Status       string   `json:"status" validate:"required"`
	ScheduledFor int64    `json:"scheduledFor"`
	Tags         []string `json:"tags"`
	Author       string   `json:"author"`
}

// ContentDraftPatch carries the mutable fields of a draft. UpdatedAt is set
// by the service on every patch.
type ContentDraftPatch struct {
	Title        *string   `json:"title"`
	Content      *string   `json:"content"`
	Platform     *string   `json:"platform"`
	Status       *string   `json:"status"`
	ScheduledFor *int64    `json:"scheduledFor"`
	PublishedAt  *int64    `json:"publishedAt"`
	Tags         *[]string `json:"tags"`
	UpdatedAt    int64     `json:"-"`
}

// ContentDraftFilter holds optional exact-match list filters.
type ContentDraftFilter struct {
	Status   string
	Platform string
}

// ContentDraftRepository defines content draft storage.
type ContentDraftRepository interface {
	Insert(ctx context.Context, draft *ContentDraft) error
	List(ctx context.Context, filter ContentDraftFilter) ([]ContentDraft, error)
	Update(ctx context.Context, id string, patch ContentDraftPatch) error
	Delete(ctx context.Context, id string) error
}
