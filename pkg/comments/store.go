package comments

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/models"
)

// ErrStorageUnavailable is returned when the backing database cannot serve a
// request.
var ErrStorageUnavailable = errors.New("comment storage unavailable")

// DeleteResult reports how many comments a delete removed. A DeletedCount of
// zero means the comment was not found.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Store is the data access interface for comments.
type Store interface {
	// FindAll returns all stored comments.
	FindAll(ctx context.Context) ([]models.Comment, error)

	// DeleteByID deletes at most one comment matching id.
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
}

// GormStore is a Store backed by gorm.
type GormStore struct {
	db  *gorm.DB
	log hclog.Logger
}

var _ Store = (*GormStore)(nil)

// NewGormStore returns a Store using db.
func NewGormStore(db *gorm.DB, log hclog.Logger) *GormStore {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &GormStore{
		db:  db,
		log: log,
	}
}

// FindAll returns all comments, oldest first.
func (s *GormStore) FindAll(ctx context.Context) ([]models.Comment, error) {
	comments, err := models.GetAllComments(ctx, s.db)
	if err != nil {
		return nil, s.unavailable("find all comments", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// DeleteByID deletes the comment with the given id.
func (s *GormStore) DeleteByID(ctx context.Context, id string) (DeleteResult, error) {
	if err := validation.Validate(id, validation.Required); err != nil {
		return DeleteResult{}, fmt.Errorf("invalid comment id: %w", err)
	}

	n, err := models.DeleteCommentByID(ctx, s.db, id)
	if err != nil {
		return DeleteResult{}, s.unavailable("delete comment", err)
	}
	if n > 1 {
		// IDs are primary keys, so this would mean a broken schema.
		s.log.Warn("delete by id removed more than one comment",
			"id", id,
			"deleted", n,
		)
	}
	return DeleteResult{DeletedCount: n}, nil
}

// Create stores a new comment.
func (s *GormStore) Create(ctx context.Context, c *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// unavailable logs err and wraps it with ErrStorageUnavailable.
func (s *GormStore) unavailable(op string, err error) error {
	logArgs := []any{
		"op", op,
		"error", err,
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		logArgs = append(logArgs,
			"pg_code", pgErr.Code,
			"pg_severity", pgErr.Severity,
		)
	}
	s.log.Error("comment storage error", logArgs...)

	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
