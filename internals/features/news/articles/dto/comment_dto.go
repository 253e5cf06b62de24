package dto

import (
	"time"

	"kpopnews_backend/internals/features/news/articles/model"
)

type CommentDTO struct {
	CommentID        string    `json:"comment_id"`
	CommentAuthor    string    `json:"comment_author"`
	CommentText      string    `json:"comment_text"`
	CommentCreatedAt time.Time `json:"comment_created_at"`
}

type CreateCommentRequest struct {
	Author string `form:"author" json:"author"`
	Text   string `form:"text" json:"text"`
}

func ToCommentDTO(m model.CommentModel) CommentDTO {
	return CommentDTO{
		CommentID:        m.CommentID,
		CommentAuthor:    m.CommentAuthor,
		CommentText:      m.CommentText,
		CommentCreatedAt: m.CommentCreatedAt,
	}
}

func ToCommentDTOs(models []model.CommentModel) []CommentDTO {
	out := make([]CommentDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToCommentDTO(m))
	}
	return out
}
