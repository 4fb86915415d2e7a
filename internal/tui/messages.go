package tui

// NavigateTo switches the router to another page, optionally replaying a
// payload message into the target page.
type NavigateTo struct {
	Page    string
	Payload any
}

// reportReadyMsg carries an examination outcome into the result page.
type reportReadyMsg struct {
	report Report
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
