package formatter

// textFormatter prints the rendered screen as is
type textFormatter struct{}

// NewText creates a new text formatter
func NewText() Formatter {
	return &textFormatter{}
}

func (f *textFormatter) Format(snap *ScreenSnapshot) ([]byte, error) {
	return []byte(snap.Rendered + "\n"), nil
}
