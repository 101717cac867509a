package model

// GameStep is one turn of a solve: the guess played and the feedback it
// received.
type GameStep struct {
	Guess   string `json:"guess"`
	Outcome int    `json:"outcome"` // base-3 outcome code, 242 = solved
	Pattern string `json:"pattern"` // e.g. "gy__g"
}

// SolveResult is the full trace of one solve attempt.
type SolveResult struct {
	Answer    string     `json:"answer"`
	Steps     []GameStep `json:"steps"`
	Solved    bool       `json:"solved"`
	Turns     int        `json:"turns"`
	LastGuess string     `json:"last_guess,omitempty"` // set when the solve failed
	HardMode  bool       `json:"hard_mode,omitempty"`
	UsedTree  bool       `json:"used_tree"` // whether the precomputed tree drove at least one turn
	TookMs    int64      `json:"took_ms"`
}

// OpeningResult is the outcome of the best-opening-word analysis.
type OpeningResult struct {
	Word       string  `json:"word"`
	Score      float64 `json:"score"`
	Candidates int     `json:"candidates"` // vocabulary size the analysis ran over
	TookMs     int64   `json:"took_ms"`
}
