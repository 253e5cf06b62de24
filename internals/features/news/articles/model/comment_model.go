package model

import "time"

type CommentModel struct {
	CommentID        string    `gorm:"column:comment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"comment_id"`
	CommentArticleID string    `gorm:"column:comment_article_id;type:uuid;not null" json:"comment_article_id"`
	CommentAuthor    string    `gorm:"column:comment_author;type:varchar(50);not null;default:anonymous" json:"comment_author"`
	CommentText      string    `gorm:"column:comment_text;type:text;not null" json:"comment_text"`
	CommentCreatedAt time.Time `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
}

func (CommentModel) TableName() string {
	return "article_comments"
}
