package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/docconv"
	bt "github.com/fwojciec/docconv/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(docconv.DefaultTheme())

	assert.Equal(t, lipgloss.Color("5"), styles.Title.GetForeground())
	assert.True(t, styles.Title.GetBold())

	assert.Equal(t, lipgloss.Color("8"), styles.Muted.GetForeground())
	assert.True(t, styles.Muted.GetFaint())

	assert.Equal(t, lipgloss.Color("4"), styles.Accent.GetForeground())
	assert.True(t, styles.Accent.GetBold())
}

func TestNewStylesNegativeIndexYieldsNoColor(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(docconv.Theme{Heading: -1})

	assert.Equal(t, lipgloss.NoColor{}, styles.Title.GetForeground())
}
