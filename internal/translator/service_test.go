package translator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingagents/internal/types"
)

type recordingBackend struct {
	calls []string
	err   error
	empty bool
}

func (r *recordingBackend) Translate(ctx context.Context, text string) (string, error) {
	r.calls = append(r.calls, text)
	if r.err != nil {
		return "", r.err
	}
	if r.empty {
		return " \n", nil
	}
	return "zh:" + text, nil
}

func TestTranslateBlankInputSkipsBackend(t *testing.T) {
	b := &recordingBackend{}
	out, err := New(b, 0).Translate(context.Background(), "  \n")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, b.calls)
}

func TestTranslateDelegates(t *testing.T) {
	b := &recordingBackend{}
	out, err := New(b, 0).Translate(context.Background(), "## Summary")
	require.NoError(t, err)
	assert.Equal(t, "zh:## Summary", out)
	assert.Equal(t, []string{"## Summary"}, b.calls)
}

func TestTranslateErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	_, err := New(&recordingBackend{err: boom}, 0).Translate(context.Background(), "x")
	assert.ErrorIs(t, err, boom)

	_, err = New(&recordingBackend{empty: true}, 0).Translate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrEmptyTranslation)
}

func TestLimiterHonoursContext(t *testing.T) {
	b := &recordingBackend{}
	s := New(b, 1) // one call per minute

	_, err := s.Translate(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Translate(ctx, "second")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "rate limiter:"))
	assert.Equal(t, []string{"first"}, b.calls)
}

func TestTranslateSections(t *testing.T) {
	b := &recordingBackend{}
	got, err := New(b, 0).TranslateSections(context.Background(), []types.Section{
		{Key: "report_market", Body: "Up"},
		{Key: "report_news", Body: ""},
		{Key: "report_final", Body: "BUY"},
	})
	require.NoError(t, err)
	assert.Equal(t, []types.Section{
		{Key: "report_market", Body: "zh:Up"},
		{Key: "report_news", Body: ""},
		{Key: "report_final", Body: "zh:BUY"},
	}, got)
	assert.Equal(t, []string{"Up", "BUY"}, b.calls)
}

func TestTranslateSectionsStopsOnFailure(t *testing.T) {
	boom := errors.New("down")
	b := &recordingBackend{err: boom}
	got, err := New(b, 0).TranslateSections(context.Background(), []types.Section{
		{Key: "report_market", Body: "Up"},
		{Key: "report_final", Body: "BUY"},
	})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "section report_market")
	assert.Nil(t, got)
	assert.Len(t, b.calls, 1)
}
