package console

import tea "github.com/charmbracelet/bubbletea"

// StartCmd exposes the data command Init batches with the cursor blink.
func (m Model) StartCmd() tea.Cmd { return m.start() }
