package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalize(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	params := map[string]interface{}{"ID": "abc"}

	assert.Equal(t, "Node abc was not found.", tr.Localize("node.not_found", params, "fallback", "en"))
	assert.Equal(t, "Le nœud abc est introuvable.", tr.Localize("node.not_found", params, "fallback", "fr-CA"))
	// Unsupported language falls back to the default catalog.
	assert.Equal(t, "Node abc was not found.", tr.Localize("node.not_found", params, "fallback", "de"))
}

func TestLocalizeUnknownMessage(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "raw message", tr.Localize("does.not.exist", nil, "raw message", "en"))
	assert.Equal(t, "raw message", tr.Localize("", nil, "raw message", "en"))
}
