package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is how the space leader is written in a bound sequence.
const leaderSeq = "SPC"

// KeybindRegistry holds the glossary screen's key bindings. A sequence is
// either a single key ("j", "f", "ctrl+c") or the leader followed by keys
// separated by spaces: "SPC l b" picks the letter b, "SPC t a" adds a term.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // absent: every zone
}

func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind binds seq to cmd with no help text, replacing any earlier binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc binds seq in every zone and shows desc in the help.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode binds seq only in the given zones. An empty modes
// list binds it everywhere, clearing any earlier restriction.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command bound to seq, ignoring zones.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForMode returns the command bound to seq if it is active in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether some longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabels names the leader groups in the help popup.
var submenuLabels = map[string]string{
	"l": "Letter",
	"t": "Term",
}

// LeaderHints lists the keys that may follow currentSeq, keyed by key.
// An empty currentSeq means the leader alone, which yields "q", "l" and "t";
// "SPC l" yields the letters. Groups show their submenu label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := leaderSeq + " "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesToMode(seq, mode) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		key := rest
		if len(parts) > 0 {
			key = parts[0]
		}
		if r.HasPrefix(prefix + key) {
			if label, ok := submenuLabels[key]; ok {
				out[key] = label
			} else {
				out[key] = key + "…"
			}
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[key] = d
		} else {
			out[key] = seq
		}
	}
	return out
}

// KeyHints returns the described single-key bindings active in mode.
func (r *KeybindRegistry) KeyHints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || strings.HasPrefix(seq, leaderSeq) || !r.appliesToMode(seq, mode) {
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[seq] = d
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	return slices.Contains(modes, mode)
}

// normalizeSeq spells the space key as the leader.
func normalizeSeq(seq string) string {
	if seq == " " {
		return leaderSeq
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = leaderSeq
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler turns key presses into registry commands, collecting a leader
// sequence in Buffer until it names a binding or runs out of matches.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string
}

// NewKeyHandler returns a handler using the space leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle reports whether msg was taken by a binding active in mode. Keys
// it does not take belong to the focused view.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())
	if h.LeaderWaiting {
		return true, h.continueLeader(part, mode)
	}
	if part == leaderSeq {
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	}
	if part == "esc" {
		return false, nil
	}
	if c := h.Registry.LookupForMode(part, mode); c != nil {
		return true, c
	}
	return false, nil
}

// continueLeader extends the pending sequence. Esc, a complete binding, or
// a dead end all leave leader mode.
func (h *KeyHandler) continueLeader(part string, mode AppMode) tea.Cmd {
	if part == "esc" {
		h.reset()
		return nil
	}
	h.Buffer = append(h.Buffer, part)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.LookupForMode(seq, mode); c != nil {
		h.reset()
		return c
	}
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyMap feeds the pending leader sequence's hints to bubbles/help.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap returns the help.KeyMap for mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		mode:       mode,
	}
}

// ShortHelp lists the next keys, then esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.currentSeq(), km.mode)
	if len(hints) == 0 {
		return nil
	}
	bindings := hintBindings(hints)
	return append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
}

func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

func (km *KeyMap) currentSeq() string {
	if km.keyHandler == nil || len(km.keyHandler.Buffer) <= 1 {
		return ""
	}
	return strings.Join(km.keyHandler.Buffer, " ")
}

// hintBindings sorts hints by key.
func hintBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}
