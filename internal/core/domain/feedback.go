package domain

import "sort"

// FeedbackReason is a predefined tag explaining a negative verdict.
type FeedbackReason string

// Reason tags offered during negative-feedback collection.
const (
	ReasonInaccurate   FeedbackReason = "inaccurate"
	ReasonIncomplete   FeedbackReason = "incomplete"
	ReasonOffTopic     FeedbackReason = "off_topic"
	ReasonBadSources   FeedbackReason = "bad_sources"
	ReasonHardToFollow FeedbackReason = "hard_to_follow"
)

// AllFeedbackReasons lists the selectable reason tags in display order.
var AllFeedbackReasons = []FeedbackReason{
	ReasonInaccurate,
	ReasonIncomplete,
	ReasonOffTopic,
	ReasonBadSources,
	ReasonHardToFollow,
}

// FeedbackDraft is an in-progress negative-feedback collection for one
// assistant message. Reasons behave as a set: each tag toggles on and
// off independently and duplicates are impossible by construction.
type FeedbackDraft struct {
	// ID identifies the collection session.
	ID string

	// MessageIndex is the transcript index of the annotated answer.
	MessageIndex int

	// Note is the optional free-text comment.
	Note string

	reasons map[FeedbackReason]bool
}

// NewFeedbackDraft opens a draft for the message at index.
func NewFeedbackDraft(id string, index int) *FeedbackDraft {
	return &FeedbackDraft{
		ID:           id,
		MessageIndex: index,
		reasons:      make(map[FeedbackReason]bool),
	}
}

// ToggleReason flips the selection state of a reason tag and returns
// the new state.
func (d *FeedbackDraft) ToggleReason(r FeedbackReason) bool {
	if d.reasons[r] {
		delete(d.reasons, r)
		return false
	}
	d.reasons[r] = true
	return true
}

// Selected reports whether a reason tag is currently selected.
func (d *FeedbackDraft) Selected(r FeedbackReason) bool {
	return d.reasons[r]
}

// Reasons returns the selected tags in stable order.
func (d *FeedbackDraft) Reasons() []FeedbackReason {
	out := make([]FeedbackReason, 0, len(d.reasons))
	for r := range d.reasons {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Report finalises the draft into an immutable record.
func (d *FeedbackDraft) Report() FeedbackReport {
	return FeedbackReport{
		MessageIndex: d.MessageIndex,
		Reasons:      d.Reasons(),
		Note:         d.Note,
	}
}

// FeedbackReport is the finalised structured feedback for one answer.
type FeedbackReport struct {
	// MessageIndex is the transcript index of the annotated answer.
	MessageIndex int `json:"message_index"`

	// Reasons holds the selected reason tags.
	Reasons []FeedbackReason `json:"reasons"`

	// Note is the optional free-text comment.
	Note string `json:"note,omitempty"`
}
