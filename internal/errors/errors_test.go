package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"file not found", FileNotFound("x.txt", fs.ErrNotExist), IsFile},
		{"file unreadable", FileUnreadable("x.txt", fs.ErrPermission), IsFile},
		{"encoding", InvalidEncoding(3), IsEncoding},
		{"sentinel", SentinelMissing(">>>>>Begin Spectral Data<<<<<"), IsFormat},
		{"bad number", BadNumber(12, "abc", stderrors.New("parse")), IsFormat},
		{"ragged row", RaggedRow(12, 3, 2), IsFormat},
		{"serialization", Unrepresentable("key", stderrors.New("marshal")), IsSerialization},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
		})
	}
}

func TestPredicatesRejectOtherCategories(t *testing.T) {
	err := InvalidEncoding(1)
	assert.False(t, IsFile(err))
	assert.False(t, IsFormat(err))
	assert.False(t, IsSerialization(err))
	assert.False(t, IsFile(stderrors.New("plain")))
}

func TestErrorMessageCarriesLine(t *testing.T) {
	err := BadNumber(42, "abc", stderrors.New("parse"))
	assert.Contains(t, err.Error(), "line 42")
	assert.Contains(t, err.Error(), "abc")
	assert.Equal(t, 42, LineOf(err))
}

func TestLineOfUnstructuredError(t *testing.T) {
	assert.Equal(t, 0, LineOf(stderrors.New("plain")))
	assert.Equal(t, 0, LineOf(SentinelMissing("marker")))
}

func TestWrappingSurvivesErrorsAs(t *testing.T) {
	inner := RaggedRow(7, 3, 2)
	wrapped := fmt.Errorf("parse spectrum.txt: %w", inner)

	require.True(t, IsFormat(wrapped))
	assert.Equal(t, 7, LineOf(wrapped))

	var pe *ParseError
	require.True(t, stderrors.As(wrapped, &pe))
	assert.Equal(t, CodeRaggedRow, pe.Code)
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := fs.ErrNotExist
	err := FileNotFound("missing.txt", cause)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
}
