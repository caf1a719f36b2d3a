package glossary

// Command is one user action for Controller.Handle.
type Command interface {
	commandName() string
}

// Fetch lists terms matching Keyword and applies the Letter filter with
// toggle semantics: repeating the active letter clears it.
type Fetch struct {
	Keyword string
	Letter  string
}

// Delete removes a term, then re-fetches everything unfiltered.
type Delete struct {
	ID int64
}

// BeginEdit loads a term into the form and opens it for update.
type BeginEdit struct {
	ID int64
}

// Submit saves the form: update when editing, create otherwise.
type Submit struct {
	Form Form
}

// OpenForCreate opens an empty form.
type OpenForCreate struct{}

// Close dismisses the form without saving.
type Close struct{}

func (Fetch) commandName() string         { return "fetch" }
func (Delete) commandName() string        { return "delete" }
func (BeginEdit) commandName() string     { return "begin-edit" }
func (Submit) commandName() string        { return "submit" }
func (OpenForCreate) commandName() string { return "open-for-create" }
func (Close) commandName() string         { return "close" }

// CommandName returns a short name for logging.
func CommandName(c Command) string {
	if c == nil {
		return ""
	}
	return c.commandName()
}
