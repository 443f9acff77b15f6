package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#1E6F5C"), theme.Primary)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	assert.True(t, s.Title.GetBold())
	assert.True(t, s.Eligible.GetBold())
	assert.True(t, s.NotEligible.GetBold())
}
