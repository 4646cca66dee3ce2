package monitor

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/smartparking/parkwatch/internal/render"
)

// SortOrder defines how space rows are ordered in the table.
type SortOrder int

const (
	SortAsReceived SortOrder = iota
	SortByLot
	SortOccupiedFirst
	SortOfflineFirst
)

// String returns a human-readable label for the sort order.
func (s SortOrder) String() string {
	switch s {
	case SortAsReceived:
		return "as received"
	case SortByLot:
		return "by lot"
	case SortOccupiedFirst:
		return "occupied first"
	case SortOfflineFirst:
		return "offline first"
	default:
		return "as received"
	}
}

// Next cycles to the next sort order.
func (s SortOrder) Next() SortOrder {
	return SortOrder((int(s) + 1) % 4)
}

// Sort returns the rows in this order. The input is not modified and ties
// keep the order the backend sent.
func (s SortOrder) Sort(rows []render.SpaceRow) []render.SpaceRow {
	out := append([]render.SpaceRow(nil), rows...)

	switch s {
	case SortByLot:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].LotID != out[j].LotID {
				return out[i].LotID < out[j].LotID
			}
			return out[i].SpaceID < out[j].SpaceID
		})
	case SortOccupiedFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Occupancy.Class == render.PillBad && out[j].Occupancy.Class != render.PillBad
		})
	case SortOfflineFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Sensor.Class == render.PillOffline && out[j].Sensor.Class != render.PillOffline
		})
	}

	return out
}

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyCycleSort  = "s"
	KeyScrollUp   = "up"
	KeyScrollUpK  = "k"
	KeyScrollDown = "down"
	KeyScrollDnJ  = "j"
	KeyPageUp     = "pgup"
	KeyPageDown   = "pgdown"
	KeyTop        = "home"
	KeyBottom     = "end"
	KeyCollapse   = "esc"
	KeyToggleHelp = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		m.refreshing = true
		if m.refresh != nil {
			m.refresh()
		}
		return true, nil

	case KeyCycleSort:
		m.sortOrder = m.sortOrder.Next()
		m.syncSpaces()
		m.spaces.GotoTop()
		return true, nil

	case KeyScrollUp, KeyScrollUpK, KeyScrollDown, KeyScrollDnJ, KeyPageUp, KeyPageDown:
		var cmd tea.Cmd
		m.spaces, cmd = m.spaces.Update(msg)
		return true, cmd

	case KeyTop:
		m.spaces.GotoTop()
		return true, nil

	case KeyBottom:
		m.spaces.GotoBottom()
		return true, nil
	}

	return false, nil
}
