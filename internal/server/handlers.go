package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"glossary/internal/glossary"
	"glossary/internal/store"
)

// termInput mirrors the request body of create and update. Pointers tell
// a missing field from an empty one.
type termInput struct {
	Term       *string `json:"term"`
	Definition *string `json:"definition"`
	Theme      *string `json:"theme"`
	Example    *string `json:"example"`
	Source     *string `json:"source"`
}

// validationIssue follows the {"detail": [{"loc", "msg", "type"}]} shape
// the API has always used for 422 responses.
type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func (in termInput) form() (glossary.Form, []validationIssue) {
	var issues []validationIssue
	required := func(name string, v *string) string {
		if v == nil {
			issues = append(issues, validationIssue{
				Loc:  []string{"body", name},
				Msg:  "field required",
				Type: "value_error.missing",
			})
			return ""
		}
		return *v
	}
	f := glossary.Form{
		Term:       required("term", in.Term),
		Definition: required("definition", in.Definition),
		Theme:      required("theme", in.Theme),
		Source:     required("source", in.Source),
	}
	if in.Example != nil {
		f.Example = *in.Example
	}
	return f, issues
}

func (s *Server) addTerm(w http.ResponseWriter, r *http.Request) {
	f, ok := s.decodeForm(w, r)
	if !ok {
		return
	}
	t, err := s.store.Create(r.Context(), f)
	if errors.Is(err, store.ErrDuplicateTerm) {
		writeDetail(w, r, http.StatusBadRequest, "Term already exists.")
		return
	}
	if err != nil {
		s.internalError(w, r, "add term", err)
		return
	}
	render.JSON(w, r, map[string]any{"message": "Term added successfully", "term": t.Term})
}

func (s *Server) listTerms(w http.ResponseWriter, r *http.Request) {
	q := store.ListQuery{Theme: r.URL.Query().Get("theme"), Alphabetical: true}
	if raw := r.URL.Query().Get("alphabetical"); raw != "" {
		alpha, err := strconv.ParseBool(raw)
		if err != nil {
			writeValidation(w, r, validationIssue{
				Loc:  []string{"query", "alphabetical"},
				Msg:  "value could not be parsed to a boolean",
				Type: "type_error.bool",
			})
			return
		}
		q.Alphabetical = alpha
	}
	terms, err := s.store.List(r.Context(), q)
	if err != nil {
		s.internalError(w, r, "list terms", err)
		return
	}
	render.JSON(w, r, terms)
}

func (s *Server) searchTerms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("keyword") {
		writeValidation(w, r, validationIssue{
			Loc:  []string{"query", "keyword"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
		return
	}
	terms, err := s.store.Search(r.Context(), query.Get("keyword"))
	if err != nil {
		s.internalError(w, r, "search terms", err)
		return
	}
	render.JSON(w, r, terms)
}

func (s *Server) getTerm(w http.ResponseWriter, r *http.Request) {
	id, ok := termID(w, r)
	if !ok {
		return
	}
	t, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeDetail(w, r, http.StatusNotFound, "Term not found.")
		return
	}
	if err != nil {
		s.internalError(w, r, "get term", err)
		return
	}
	render.JSON(w, r, t)
}

func (s *Server) deleteTerm(w http.ResponseWriter, r *http.Request) {
	id, ok := termID(w, r)
	if !ok {
		return
	}
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeDetail(w, r, http.StatusNotFound, "Term not found.")
		return
	}
	if err != nil {
		s.internalError(w, r, "delete term", err)
		return
	}
	render.JSON(w, r, map[string]any{"message": "Term deleted successfully"})
}

func (s *Server) updateTerm(w http.ResponseWriter, r *http.Request) {
	id, ok := termID(w, r)
	if !ok {
		return
	}
	f, ok := s.decodeForm(w, r)
	if !ok {
		return
	}
	err := s.store.Update(r.Context(), id, f)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeDetail(w, r, http.StatusNotFound, "Term not found.")
	case errors.Is(err, store.ErrDuplicateTerm):
		writeDetail(w, r, http.StatusBadRequest, "Term with this name already exists.")
	case err != nil:
		s.internalError(w, r, "update term", err)
	default:
		render.JSON(w, r, map[string]any{"message": "Term updated successfully"})
	}
}

func (s *Server) decodeForm(w http.ResponseWriter, r *http.Request) (glossary.Form, bool) {
	var in termInput
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		writeValidation(w, r, validationIssue{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error.jsondecode",
		})
		return glossary.Form{}, false
	}
	f, issues := in.form()
	if len(issues) > 0 {
		writeValidation(w, r, issues...)
		return glossary.Form{}, false
	}
	return f, true
}

func termID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeValidation(w, r, validationIssue{
			Loc:  []string{"path", "term_id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		})
		return 0, false
	}
	return id, true
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.WithError(err).WithField("op", op).Error("term API request failed")
	writeDetail(w, r, http.StatusInternalServerError, err.Error())
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]any{"detail": detail})
}

func writeValidation(w http.ResponseWriter, r *http.Request, issues ...validationIssue) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, map[string]any{"detail": issues})
}
