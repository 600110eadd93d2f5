// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/intramate/intramate-cli/internal/adapters/driving/tui/components/input"
	"github.com/intramate/intramate-cli/internal/adapters/driving/tui/keymap"
	"github.com/intramate/intramate-cli/internal/adapters/driving/tui/messages"
	"github.com/intramate/intramate-cli/internal/adapters/driving/tui/styles"
	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
)

// formRow identifies a row in the negative-feedback form. Rows 0 to
// len(reasons)-1 are reason toggles, followed by note, submit, cancel.
type formRow int

// feedbackForm is the negative-feedback overlay state.
type feedbackForm struct {
	index     int
	selected  formRow
	noteMode  bool
	noteInput textinput.Model
}

// View represents the conversation view with transcript and input.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.QuestionInput

	chatService driving.ChatService
	attribution driving.AttributionService
	feedback    driving.FeedbackService
	ctx         context.Context

	transcript []domain.Message
	selected   int
	language   string

	width      int
	height     int
	ready      bool
	err        error
	asking     bool
	focusInput bool // true = typing a question, false = browsing the transcript
	form       *feedbackForm
}

// NewView creates a new conversation view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	chatService driving.ChatService,
	attribution driving.AttributionService,
	feedback driving.FeedbackService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewQuestionInput(s),
		chatService: chatService,
		attribution: attribution,
		feedback:    feedback,
		ctx:         context.Background(),
		width:       80,
		height:      24,
		focusInput:  true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetLanguage sets the answer language for subsequent questions.
func (v *View) SetLanguage(language string) {
	v.language = language
}

// Init initialises the view and loads the persisted transcript.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadTranscript())
}

// Update handles messages for the conversation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TranscriptLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.transcript = msg.Messages
		if v.selected >= len(v.transcript) {
			v.selected = len(v.transcript) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		return v, nil

	case messages.AnswerReceived:
		v.asking = false
		if msg.Answer == nil && msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		// Folded remote failures still produce an answer entry, so the
		// transcript reload covers both outcomes.
		v.err = nil
		return v, v.loadTranscript()

	case messages.FeedbackRecorded:
		v.form = nil
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadTranscript()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	// Forward to input component
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.form != nil {
		return v.handleFormKey(msg)
	}

	// Esc signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter in input mode submits the question
	if msg.Type == tea.KeyEnter && v.focusInput {
		question := strings.TrimSpace(v.input.Value())
		if question == "" || v.asking {
			return v, nil
		}
		v.asking = true
		v.focusInput = false
		v.input.Blur()
		v.input.SetValue("")
		return v, v.performAsk(question)
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Browse mode
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil
	case "down", "j":
		if v.selected < len(v.transcript)-1 {
			v.selected++
		}
		return v, nil
	case "n":
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case "s":
		if v.attribution != nil && v.selectedHasSources() {
			v.attribution.Toggle(v.selected)
		}
		return v, nil
	case "+":
		if v.feedback != nil && v.selectedIsAssistant() {
			return v, v.recordPositive(v.selected)
		}
		return v, nil
	case "-":
		if v.feedback != nil && v.selectedIsAssistant() {
			return v.openFeedbackForm()
		}
		return v, nil
	}

	return v, nil
}

// openFeedbackForm begins a negative-feedback draft for the selected answer.
func (v *View) openFeedbackForm() (*View, tea.Cmd) {
	_, err := v.feedback.Begin(v.ctx, v.selected)
	if err != nil {
		v.err = err
		return v, nil
	}

	ti := textinput.New()
	ti.Placeholder = "Optional note..."
	ti.CharLimit = 256
	ti.Width = 50

	v.err = nil
	v.form = &feedbackForm{
		index:     v.selected,
		noteInput: ti,
	}
	return v, nil
}

// handleFormKey processes keyboard input while the feedback form is open.
func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	reasons := domain.AllFeedbackReasons
	noteRow := formRow(len(reasons))
	submitRow := noteRow + 1
	cancelRow := submitRow + 1

	if v.form.noteMode {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyEnter:
			if err := v.feedback.SetNote(v.form.noteInput.Value()); err != nil {
				v.err = err
			}
			v.form.noteMode = false
			v.form.noteInput.Blur()
			return v, nil
		case tea.KeyEsc:
			v.form.noteMode = false
			v.form.noteInput.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.form.noteInput, cmd = v.form.noteInput.Update(msg)
		return v, cmd
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.feedback.Cancel()
		v.form = nil
		return v, nil
	case tea.KeyEnter, tea.KeySpace:
		switch {
		case v.form.selected < noteRow:
			if _, err := v.feedback.ToggleReason(reasons[v.form.selected]); err != nil {
				v.err = err
			}
			return v, nil
		case v.form.selected == noteRow:
			v.form.noteMode = true
			return v, v.form.noteInput.Focus()
		case v.form.selected == submitRow:
			index := v.form.index
			return v, v.submitFeedback(index)
		default:
			v.feedback.Cancel()
			v.form = nil
			return v, nil
		}
	}

	switch msg.String() {
	case "up", "k":
		if v.form.selected > 0 {
			v.form.selected--
		}
	case "down", "j":
		if v.form.selected < cancelRow {
			v.form.selected++
		}
	}

	return v, nil
}

// selectedIsAssistant reports whether the selected entry is an answer.
func (v *View) selectedIsAssistant() bool {
	if v.selected >= len(v.transcript) {
		return false
	}
	return v.transcript[v.selected].IsAssistant()
}

// selectedHasSources reports whether the selected entry carries sources.
func (v *View) selectedHasSources() bool {
	if v.selected >= len(v.transcript) {
		return false
	}
	return v.transcript[v.selected].Sources != nil
}

// loadTranscript returns a command that loads the conversation history.
func (v *View) loadTranscript() tea.Cmd {
	return func() tea.Msg {
		if v.chatService == nil {
			return messages.TranscriptLoaded{Err: ErrNoChatService}
		}
		history, err := v.chatService.History(v.ctx)
		return messages.TranscriptLoaded{Messages: history, Err: err}
	}
}

// performAsk returns a command that sends the question.
func (v *View) performAsk(question string) tea.Cmd {
	return func() tea.Msg {
		if v.chatService == nil {
			return messages.AnswerReceived{Err: ErrNoChatService}
		}
		answer, err := v.chatService.Ask(v.ctx, question, v.language)
		return messages.AnswerReceived{Answer: answer, Err: err}
	}
}

// recordPositive returns a command that marks the answer as helpful.
func (v *View) recordPositive(index int) tea.Cmd {
	return func() tea.Msg {
		err := v.feedback.RecordPositive(v.ctx, index)
		return messages.FeedbackRecorded{Index: index, Verdict: domain.VerdictPositive, Err: err}
	}
}

// submitFeedback returns a command that finalises the negative draft.
func (v *View) submitFeedback(index int) tea.Cmd {
	return func() tea.Msg {
		err := v.feedback.Submit(v.ctx)
		return messages.FeedbackRecorded{Index: index, Verdict: domain.VerdictNegative, Err: err}
	}
}

// View renders the conversation view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	header := v.styles.Title.Render("IntraMate Chat")
	sections = append(sections, header, "")

	if len(v.transcript) == 0 && !v.asking {
		sections = append(sections, v.styles.Muted.Render("No conversation yet. Type a question below."), "")
	}

	for i := range v.transcript {
		sections = append(sections, v.renderMessage(i, &v.transcript[i]))
	}

	if v.asking {
		sections = append(sections, v.styles.Muted.Render("Thinking..."))
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "")

	if v.form != nil {
		sections = append(sections, v.renderFeedbackForm())
	} else {
		sections = append(sections, v.input.View())
	}

	sections = append(sections, "", v.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMessage renders a single transcript entry.
func (v *View) renderMessage(index int, m *domain.Message) string {
	indicator := "  "
	if !v.focusInput && index == v.selected {
		indicator = "> "
	}

	var b strings.Builder
	if m.IsAssistant() {
		b.WriteString(indicator + v.styles.Subtitle.Render("IntraMate: ") + v.styles.Assistant.Render(m.Content))
		switch m.Feedback {
		case domain.VerdictPositive:
			b.WriteString(v.styles.Success.Render("  [helpful]"))
		case domain.VerdictNegative:
			b.WriteString(v.styles.Warning.Render("  [not helpful]"))
		}
	} else {
		b.WriteString(indicator + v.styles.User.Render("You: ") + v.styles.Normal.Render(m.Content))
	}

	if m.Sources != nil {
		if v.attribution != nil && v.attribution.Expanded(index) {
			b.WriteString("\n")
			b.WriteString(v.renderSources(m.Sources))
		} else {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  (%d sources, press s)", m.Sources.Count())))
		}
	}

	return b.String()
}

// renderSources renders the expanded source panel for an answer.
func (v *View) renderSources(src *domain.Sources) string {
	lines := make([]string, 0, src.Count())
	switch src.Type {
	case domain.SourceDocuments:
		for _, doc := range src.Documents {
			line := "• " + doc.Source
			if doc.Preview != "" {
				line += ": " + doc.Preview
			}
			lines = append(lines, v.styles.Source.Render(line))
		}
	case domain.SourceWeb:
		for _, ref := range src.Web {
			line := "• " + ref.URL
			if ref.Title != "" {
				line = "• " + ref.Title + " <" + ref.URL + ">"
			}
			lines = append(lines, v.styles.Source.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// renderFeedbackForm renders the negative-feedback overlay.
func (v *View) renderFeedbackForm() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("What was wrong with this answer?"))
	b.WriteString("\n\n")

	reasons := domain.AllFeedbackReasons
	draft := v.feedback.Draft()

	for i, reason := range reasons {
		indicator := "  "
		if v.form.selected == formRow(i) {
			indicator = "> "
		}
		check := "[ ]"
		if draft != nil && draft.Selected(reason) {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", indicator, check, strings.ReplaceAll(string(reason), "_", " "))
		if v.form.selected == formRow(i) {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	noteRow := formRow(len(reasons))
	rows := []struct {
		row   formRow
		label string
	}{
		{noteRow, "Note"},
		{noteRow + 1, "Submit"},
		{noteRow + 2, "Cancel"},
	}

	for _, r := range rows {
		indicator := "  "
		if v.form.selected == r.row {
			indicator = "> "
		}
		label := r.label
		if r.row == noteRow {
			if v.form.noteMode {
				label = "Note: " + v.form.noteInput.View()
			} else if draft != nil && draft.Note != "" {
				label = "Note: " + draft.Note
			}
		}
		line := indicator + label
		if v.form.selected == r.row && !v.form.noteMode {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] toggle/select  [esc] cancel"))

	menuStyle := v.styles.Border.Padding(0, 1)
	return menuStyle.Render(b.String())
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	if v.focusInput {
		return v.styles.Help.Render("[enter] ask  [esc] back to menu")
	}
	return v.styles.Help.Render("[↑/↓] navigate  [s] sources  [+/-] feedback  [n] new question  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Transcript returns the currently displayed transcript.
func (v *View) Transcript() []domain.Message {
	return v.transcript
}

// SelectedIndex returns the index of the selected transcript entry.
func (v *View) SelectedIndex() int {
	return v.selected
}

// InputFocused returns whether the question input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Asking reports whether a question is in flight.
func (v *View) Asking() bool {
	return v.asking
}

// FormOpen reports whether the feedback form is visible.
func (v *View) FormOpen() bool {
	return v.form != nil
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Reset returns the view to input mode without touching the transcript.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.form = nil
	v.err = nil
}
