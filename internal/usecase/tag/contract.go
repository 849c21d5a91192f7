package tag

import (
	"context"

	domtag "github.com/hoclieu/tracuu/internal/domain/tag"
)

// TagStore is the persistence surface this service needs.
type TagStore interface {
	Create(ctx context.Context, tg domtag.Tag) (domtag.Tag, error)
	Get(ctx context.Context, id int) (domtag.Tag, error)
	GetAllTags(ctx context.Context) ([]domtag.Tag, error)
	Update(ctx context.Context, tg domtag.Tag) error
	Delete(ctx context.Context, id int) error
}

// TopicLinker detaches a tag from the topics carrying it.
type TopicLinker interface {
	TopicIDsByTag(ctx context.Context, tagID int) ([]int, error)
	DetachTag(ctx context.Context, topicID, tagID int) error
}
