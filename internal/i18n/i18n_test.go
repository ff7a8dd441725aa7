package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations_DefaultMessages(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	msg := trans.GetMessage("chunk_summary_failed", 0, map[string]interface{}{
		"Files": "a.go, b.go",
	})
	assert.Equal(t, "[Summarization failed for: a.go, b.go]", msg)
}

func TestSetLanguage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	err = trans.SetLanguage("es")
	require.NoError(t, err)

	msg := trans.GetMessage("summarizing_chunk", 0, map[string]interface{}{
		"Current": 1,
		"Total":   3,
	})
	assert.Contains(t, msg, "1")
	assert.Contains(t, msg, "3")
}

func TestSetLanguage_Unsupported(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	err = trans.SetLanguage("fr")
	assert.Error(t, err)
}

func TestGetMessage_Missing(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	msg := trans.GetMessage("does_not_exist", 0, nil)
	assert.Equal(t, "Translation missing: does_not_exist", msg)
}
