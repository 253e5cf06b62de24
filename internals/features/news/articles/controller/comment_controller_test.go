package controller

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCommentValid(t *testing.T) {
	author, text, err := normalizeComment("  IU fan  ", "  great news!  ")
	require.Nil(t, err)
	assert.Equal(t, "IU fan", author)
	assert.Equal(t, "great news!", text)
}

func TestNormalizeCommentBlankAuthorDefaultsToAnonymous(t *testing.T) {
	author, _, err := normalizeComment("   ", "hello")
	require.Nil(t, err)
	assert.Equal(t, "anonymous", author)
}

func TestNormalizeCommentWhitespaceTextRejected(t *testing.T) {
	_, _, err := normalizeComment("someone", "   ")
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)
}

func TestNormalizeCommentAuthorTooLong(t *testing.T) {
	_, _, err := normalizeComment(strings.Repeat("a", 51), "hello")
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)

	// Exactly 50 characters is still allowed.
	author, _, err := normalizeComment(strings.Repeat("a", 50), "hello")
	require.Nil(t, err)
	assert.Len(t, author, 50)
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_article_comments_article"}

	assert.True(t, isForeignKeyViolation(fkErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert comment: %w", fkErr)))

	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("ERROR: 23503")))
	assert.False(t, isForeignKeyViolation(nil))
}
