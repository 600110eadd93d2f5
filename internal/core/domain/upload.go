package domain

// PendingFile is a file selected for upload. It is created at selection
// time, consumed at the end of an upload attempt, and never mutated.
type PendingFile struct {
	// Name is the file name sent to the server.
	Name string

	// Path is the local filesystem location of the payload.
	Path string

	// Size is the payload size in bytes.
	Size int64

	// Validation is the pre-upload gate outcome for this file.
	Validation FileValidation
}

// NewPendingFile builds a PendingFile and applies the validation gate.
func NewPendingFile(name, path string, size int64) PendingFile {
	return PendingFile{
		Name:       name,
		Path:       path,
		Size:       size,
		Validation: ValidateFile(name, size),
	}
}

// UploadOutcome records the result of one file within a batch.
// Progress is monotonically non-decreasing and reaches 100 exactly when
// ChunkCount is set; a failed file keeps its partial progress.
type UploadOutcome struct {
	// FileName is the name of the uploaded file.
	FileName string

	// Progress is the transfer percentage in [0,100].
	Progress int

	// ChunkCount is the server-reported chunk count. Nil until the
	// file completes successfully, then set exactly once.
	ChunkCount *int

	// Failed marks the file whose upload aborted the batch.
	Failed bool
}

// BatchPhase is the upload batch state machine phase.
type BatchPhase int

const (
	// BatchIdle means no batch has been started.
	BatchIdle BatchPhase = iota

	// BatchInProgress means a file is currently being transferred.
	BatchInProgress

	// BatchCompleted means every file in the batch succeeded.
	BatchCompleted

	// BatchAborted means a file failed and the remainder was skipped.
	BatchAborted
)

// String returns the phase name for display.
func (p BatchPhase) String() string {
	switch p {
	case BatchInProgress:
		return "in progress"
	case BatchCompleted:
		return "completed"
	case BatchAborted:
		return "aborted"
	default:
		return "idle"
	}
}

// BatchState is the explicit state machine for one upload batch.
//
// Transitions: BatchIdle -> BatchInProgress(Current) -> BatchCompleted
// or BatchAborted(FailedIndex, Err). Files already completed before a
// failure keep their recorded outcomes; their server-side effect is not
// rolled back. Outcomes persist after a terminal phase until the next
// batch replaces them.
type BatchState struct {
	// ID identifies the batch.
	ID string

	// Phase is the current state machine phase.
	Phase BatchPhase

	// Current is the index of the in-flight file while in progress.
	Current int

	// FailedIndex is the index of the failing file after an abort.
	FailedIndex int

	// Err is the failure that aborted the batch.
	Err error

	// Outcomes holds one record per file, in batch order.
	Outcomes []UploadOutcome
}

// NewBatchState builds the working state for a batch of files.
func NewBatchState(id string, files []PendingFile) BatchState {
	outcomes := make([]UploadOutcome, len(files))
	for i := range files {
		outcomes[i] = UploadOutcome{FileName: files[i].Name}
	}
	return BatchState{ID: id, Phase: BatchIdle, Outcomes: outcomes}
}

// Begin marks file i as the in-flight file with progress reset to zero.
func (b *BatchState) Begin(i int) {
	b.Phase = BatchInProgress
	b.Current = i
	b.Outcomes[i].Progress = 0
}

// ApplyProgress records a progress update for file i. Updates arrive in
// order but may report a stale percentage; the recorded value never
// regresses below a previously reported one.
func (b *BatchState) ApplyProgress(i, percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if percent > b.Outcomes[i].Progress {
		b.Outcomes[i].Progress = percent
	}
}

// Complete records the successful upload of file i. Progress is forced
// to 100 and the chunk count is set, satisfying the invariant that a
// recorded chunk count and full progress imply each other.
func (b *BatchState) Complete(i, chunks int) {
	b.Outcomes[i].Progress = 100
	b.Outcomes[i].ChunkCount = &chunks
}

// Abort moves the batch to its failed terminal state. Files after i are
// never attempted.
func (b *BatchState) Abort(i int, err error) {
	b.Phase = BatchAborted
	b.FailedIndex = i
	b.Err = err
	b.Outcomes[i].Failed = true
}

// Finish moves the batch to its successful terminal state.
func (b *BatchState) Finish() {
	b.Phase = BatchCompleted
}

// Terminal reports whether the batch has reached a terminal phase.
func (b *BatchState) Terminal() bool {
	return b.Phase == BatchCompleted || b.Phase == BatchAborted
}

// Snapshot returns a copy safe to hand to observers while the batch
// continues to mutate.
func (b *BatchState) Snapshot() BatchState {
	out := *b
	out.Outcomes = make([]UploadOutcome, len(b.Outcomes))
	copy(out.Outcomes, b.Outcomes)
	for i := range b.Outcomes {
		if b.Outcomes[i].ChunkCount != nil {
			n := *b.Outcomes[i].ChunkCount
			out.Outcomes[i].ChunkCount = &n
		}
	}
	return out
}
