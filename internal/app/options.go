package app

// Option configures a Model.
type Option func(*Model)

// WithSource sets the label shown in the header for where the document came from.
func WithSource(source string) Option {
	return func(m *Model) {
		m.source = source
	}
}

// WithHeader shows or hides the header row, overriding the config.
func WithHeader(show bool) Option {
	return func(m *Model) {
		m.showHeader = show
	}
}

// WithClipboard replaces the function used to copy text.
func WithClipboard(copyText func(string) error) Option {
	return func(m *Model) {
		m.copyText = copyText
	}
}

// WithFailureNotifier replaces the desktop notification sent when the
// document cannot be opened.
func WithFailureNotifier(notify func(source string) error) Option {
	return func(m *Model) {
		m.notifyFailure = notify
	}
}
