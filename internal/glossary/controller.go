package glossary

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// TermAPI is the remote term store the controller talks to.
type TermAPI interface {
	// Search lists terms matching keyword; an empty keyword lists all terms.
	Search(ctx context.Context, keyword string) ([]Term, error)
	Get(ctx context.Context, id int64) (Term, error)
	Create(ctx context.Context, f Form) error
	Update(ctx context.Context, id int64, f Form) error
	Delete(ctx context.Context, id int64) error
}

// Sink receives everything the controller displays.
type Sink interface {
	// ShowTerms replaces the displayed content with one card per term.
	ShowTerms(cards []Card)
	// ShowNotice replaces the displayed content with a message.
	ShowNotice(msg string)
	// OpenForm opens the term form populated with f.
	OpenForm(f Form)
	// CloseForm closes the term form and clears its fields.
	CloseForm()
}

// Editing records whether the form targets an update of a specific term.
// The zero value means the form creates a new term.
type Editing struct {
	On bool
	ID int64
}

// ViewState is the session state owned by a Controller.
type ViewState struct {
	// ActiveLetter is the last letter filter applied, compared literally
	// to detect a second press of the same letter.
	ActiveLetter string
	Editing      Editing
	ModalOpen    bool
	// Form holds the values the form was last populated with.
	Form Form
}

// Controller fetches, filters and displays terms, and turns form and card
// actions into API requests. Network failures are logged and swallowed.
//
// Requests are not serialized: overlapping commands each run their request
// and the last response to arrive decides what is displayed.
type Controller struct {
	api  TermAPI
	sink Sink
	log  logrus.FieldLogger

	mu    sync.Mutex
	state ViewState
}

// NewController creates a controller. A nil logger logs to the logrus standard logger.
func NewController(api TermAPI, sink Sink, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{api: api, sink: sink, log: log}
}

// State returns a snapshot of the view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Handle runs one command. It only returns an error for commands it does
// not understand; request failures are logged instead.
func (c *Controller) Handle(ctx context.Context, cmd Command) error {
	switch cmd := cmd.(type) {
	case Fetch:
		c.fetchAndFilter(ctx, cmd.Keyword, cmd.Letter)
	case Delete:
		c.delete(ctx, cmd.ID)
	case BeginEdit:
		c.beginEdit(ctx, cmd.ID)
	case Submit:
		c.submit(ctx, cmd.Form)
	case OpenForCreate:
		c.openForCreate()
	case Close:
		c.close()
	default:
		return fmt.Errorf("glossary: unknown command %T", cmd)
	}
	return nil
}

func (c *Controller) fetchAndFilter(ctx context.Context, keyword, letter string) {
	terms, err := c.api.Search(ctx, keyword)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"op":      "fetch",
			"keyword": keyword,
			"letter":  letter,
		}).Error("fetch terms")
		return
	}

	c.mu.Lock()
	toggleOff := letter == c.state.ActiveLetter
	if toggleOff {
		c.state.ActiveLetter = ""
	} else {
		c.state.ActiveLetter = letter
	}
	c.mu.Unlock()

	if toggleOff {
		c.sink.ShowTerms(Render(terms))
		return
	}
	filtered := FilterByInitial(terms, letter)
	if len(filtered) == 0 {
		c.sink.ShowNotice(NoTermsWithInitial)
		return
	}
	c.sink.ShowTerms(Render(filtered))
}

// delete re-fetches everything whether or not the delete succeeded,
// dropping any keyword or letter filter.
func (c *Controller) delete(ctx context.Context, id int64) {
	if err := c.api.Delete(ctx, id); err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"op": "delete", "id": id}).Error("delete term")
	}
	c.fetchAndFilter(ctx, "", "")
}

func (c *Controller) beginEdit(ctx context.Context, id int64) {
	t, err := c.api.Get(ctx, id)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"op": "begin-edit", "id": id}).Error("load term for editing")
		return
	}
	f := FormFromTerm(t)

	c.mu.Lock()
	c.state.Editing = Editing{On: true, ID: id}
	c.state.ModalOpen = true
	c.state.Form = f
	c.mu.Unlock()

	c.sink.OpenForm(f)
}

// submit cleans up the same way whether or not the save succeeded.
func (c *Controller) submit(ctx context.Context, f Form) {
	c.mu.Lock()
	editing := c.state.Editing
	c.mu.Unlock()

	var err error
	if editing.On {
		err = c.api.Update(ctx, editing.ID, f)
	} else {
		err = c.api.Create(ctx, f)
	}
	if err != nil {
		fields := logrus.Fields{"op": "submit", "editing": editing.On}
		if editing.On {
			fields["id"] = editing.ID
		}
		c.log.WithError(err).WithFields(fields).Error("save term")
	}

	c.close()
	c.fetchAndFilter(ctx, "", "")
}

func (c *Controller) openForCreate() {
	c.mu.Lock()
	c.state.Editing = Editing{}
	c.state.ModalOpen = true
	c.state.Form = Form{}
	c.mu.Unlock()

	c.sink.OpenForm(Form{})
}

func (c *Controller) close() {
	c.mu.Lock()
	c.state.Editing = Editing{}
	c.state.ModalOpen = false
	c.state.Form = Form{}
	c.mu.Unlock()

	c.sink.CloseForm()
}
