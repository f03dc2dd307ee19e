package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/docconv"
	bt "github.com/fwojciec/docconv/bubbletea"
	"github.com/fwojciec/docconv/markdown"
	"github.com/stretchr/testify/require"
)

// initModel creates a preview of src and sends a WindowSizeMsg to initialize
// the viewport.
func initModel(t *testing.T, src string, width, height int) bt.Model {
	t.Helper()
	m := bt.New(markdown.Parse(src), "Preview", docconv.DefaultTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}
