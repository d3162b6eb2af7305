package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mystery-maze/internal/config"
	"github.com/vovakirdan/mystery-maze/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(MenuModel)
	require.True(t, ok)
	return got
}

func TestMenuListsPresetsWithBestTimes(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.Run{GameID: "mystery", Width: 13, Height: 7, Elapsed: 1500 * time.Millisecond})
	require.NoError(t, err)

	m := NewMenuModel(store, testConfig(), config.SizeLarge)
	require.Len(t, m.items, len(config.SizePresets))
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, "1.50", m.items[0].Best)
	assert.Empty(t, m.items[1].Best)

	view := m.View()
	assert.Contains(t, view, "small (13x7)")
	assert.Contains(t, view, "1.50")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), config.SizeSmall)

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	res := m.result()
	assert.Equal(t, config.SizeNormal, res.Preset)
	assert.False(t, res.Quit)
	assert.False(t, res.WantsScoreboard)
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), config.SizeSmall)

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for range len(config.SizePresets) + 2 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(config.SizePresets)-1, m.cursor)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), config.SizeSmall)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.result().WantsScoreboard)

	m = NewMenuModel(nil, testConfig(), config.SizeSmall)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.result().Quit)
	assert.Empty(t, m.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), config.SizeFit)
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	cfg := m.Config()
	assert.Equal(t, 100, cfg.ScreenW)
	assert.Equal(t, 30, cfg.ScreenH)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0.00", formatSeconds(0))
	assert.Equal(t, "12.35", formatSeconds(12345*time.Millisecond))
}
