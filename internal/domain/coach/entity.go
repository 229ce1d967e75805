package coach

import "time"

// GeneratedContent is the idempotency record and the post itself: at most
// one row per client, civil day and kind, enforced by a unique index.
type GeneratedContent struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	GymID       int64     `gorm:"column:gym_id;index" json:"gym_id"`
	ClientID    int64     `gorm:"column:client_id;uniqueIndex:idx_content_once" json:"client_id"`
	Date        string    `gorm:"column:date;uniqueIndex:idx_content_once" json:"date"`
	Kind        Kind      `gorm:"column:kind;uniqueIndex:idx_content_once" json:"kind"`
	Category    string    `gorm:"column:category" json:"category"`
	Personality string    `gorm:"column:personality" json:"personality"`
	Title       string    `gorm:"column:title" json:"title"`
	Body        string    `gorm:"column:body" json:"body"`
	Hashtags    string    `gorm:"column:hashtags" json:"hashtags"`
	ImagePrompt string    `gorm:"column:image_prompt" json:"image_prompt"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url,omitempty"`
	Remote      bool      `gorm:"column:remote" json:"remote"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (GeneratedContent) TableName() string { return "generated_contents" }
