package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\" permanently?\nThis cannot be undone.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
