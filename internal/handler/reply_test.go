package handler

import (
	"strings"
	"testing"
	"unicode/utf8"

	"medinabot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMarkup_Inline(t *testing.T) {
	reply := &domain.Reply{
		Text: "pick",
		Inline: [][]domain.Button{
			{{Label: "@alice (42)", Data: "detail_42"}},
			{{Label: "Block", Data: "block_42"}, {Label: "Unblock", Data: "unblock_42"}},
		},
		Keyboard: [][]string{{"ignored"}},
	}

	markup := buildMarkup(reply)
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Empty(t, markup.ReplyKeyboard)

	assert.Equal(t, "@alice (42)", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "detail_42", markup.InlineKeyboard[0][0].Unique)
	require.Len(t, markup.InlineKeyboard[1], 2)
	assert.Equal(t, "unblock_42", markup.InlineKeyboard[1][1].Unique)
}

func TestBuildMarkup_Keyboard(t *testing.T) {
	reply := &domain.Reply{
		Text:     "menu",
		Keyboard: [][]string{{"📖 Ask"}, {"🔎 Find", "⚙ Limit"}},
	}

	markup := buildMarkup(reply)
	require.NotNil(t, markup)
	assert.True(t, markup.ResizeKeyboard)
	require.Len(t, markup.ReplyKeyboard, 2)
	assert.Equal(t, "📖 Ask", markup.ReplyKeyboard[0][0].Text)
	assert.Equal(t, "⚙ Limit", markup.ReplyKeyboard[1][1].Text)
}

func TestBuildMarkup_None(t *testing.T) {
	assert.Nil(t, buildMarkup(&domain.Reply{Text: "plain"}))
}

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{
			name:     "short text",
			input:    "hello",
			limit:    10,
			expected: []string{"hello"},
		},
		{
			name:     "exact limit",
			input:    "0123456789",
			limit:    10,
			expected: []string{"0123456789"},
		},
		{
			name:     "hard cut",
			input:    "0123456789abcde",
			limit:    10,
			expected: []string{"0123456789", "abcde"},
		},
		{
			name:     "prefers newline",
			input:    "line one\nline two",
			limit:    10,
			expected: []string{"line one\n", "line two"},
		},
		{
			name:     "multibyte runes",
			input:    "سلامسلام",
			limit:    4,
			expected: []string{"سلام", "سلام"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitMessage(tt.input, tt.limit))
		})
	}
}

func TestSplitMessage_LongAnswer(t *testing.T) {
	text := strings.Repeat("paragraph text\n", 1000)

	chunks := splitMessage(text, maxMessageLength)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), maxMessageLength)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}
