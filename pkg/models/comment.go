package models

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a comment left on a marketplace item.
type Comment struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	// Body is the comment text.
	Body string `gorm:"type:text;not null" json:"body"`

	// ItemID is the item the comment belongs to.
	ItemID string `gorm:"type:varchar(255);index:idx_comments_item_id" json:"itemId,omitempty"`

	// SellerID is the author of the comment.
	SellerID string `gorm:"type:varchar(255)" json:"sellerId,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name.
func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate assigns an ID and validates required fields.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.ID, validation.Required, validation.Length(1, 36), is.PrintableASCII),
		validation.Field(&c.Body, validation.Required),
	); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// GetAllComments returns every comment, oldest first.
func GetAllComments(ctx context.Context, db *gorm.DB) ([]Comment, error) {
	var comments []Comment
	err := db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteCommentByID deletes the comment with the given ID and returns the
// number of rows removed. The ID is validated by the caller.
func DeleteCommentByID(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Comment{})
	return result.RowsAffected, result.Error
}
