package model

// GenerateSummary reports a completed artifact generation: how many bytes
// were written and the builder's diagnostic counters.
type GenerateSummary struct {
	Path         string `json:"path"`
	Bytes        int    `json:"bytes"`
	States       uint64 `json:"states,omitempty"`
	GuessesTried uint64 `json:"guesses_tried,omitempty"`
	Backtracks   uint64 `json:"backtracks,omitempty"`
	MaxDepth     uint32 `json:"max_depth,omitempty"`
}
