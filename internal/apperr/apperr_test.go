package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"bad request", BadRequest(""), KindBadRequest},
		{"not found", NotFound(MsgArticleNotFound), KindNotFound},
		{"conflict", Conflict(MsgTopicExists), KindConflict},
		{"internal", Internal(errors.New("boom")), KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
		{"wrapped not found", fmt.Errorf("lookup: %w", NotFound(MsgTopicNotFound)), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestBadRequestDefaultMessage(t *testing.T) {
	assert.Equal(t, MsgBadRequest, BadRequest("").Msg)
	assert.Equal(t, "limit must be positive", BadRequest("limit must be positive").Msg)
}

func TestMessageHidesInternalDetail(t *testing.T) {
	err := Internal(errors.New("pq: relation \"articles\" does not exist"))
	assert.Equal(t, MsgInternal, Message(err))
	assert.Equal(t, MsgInternal, Message(errors.New("raw driver error")))
	assert.Equal(t, MsgCommentNotFound, Message(NotFound(MsgCommentNotFound)))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("23503")
	err := Wrap(KindBadRequest, MsgBadRequest, cause)

	assert.True(t, IsBadRequest(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bad_request")
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound(MsgUserNotFound)))
	assert.False(t, IsNotFound(BadRequest("")))
	assert.True(t, IsConflict(Conflict(MsgTopicInUse)))
	assert.False(t, IsBadRequest(nil))
}
