package output

// RenameOutput is the JSON document for a rename run.
type RenameOutput struct {
	RunID   string        `json:"run_id"`
	Dir     string        `json:"dir"`
	Entries []RenameEntry `json:"entries"`
	Summary RenameSummary `json:"summary"`
}

// RenameEntry is one entry of a rename run.
type RenameEntry struct {
	Old         string `json:"old"`
	New         string `json:"new"`
	Outcome     string `json:"outcome"`
	Error       string `json:"error,omitempty"`
	MetaRenamed bool   `json:"meta_renamed"`
	MetaError   string `json:"meta_error,omitempty"`
}

// RenameSummary holds the run counters.
type RenameSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Errored   int `json:"errored"`
}

// TableOutput is the JSON document for the table command.
type TableOutput struct {
	Dir     string       `json:"dir"`
	Entries []TableEntry `json:"entries"`
}

// TableEntry is one rename table row.
type TableEntry struct {
	Old     string `json:"old"`
	New     string `json:"new"`
	OldMeta string `json:"old_meta"`
	NewMeta string `json:"new_meta"`
}

// ErrorOutput is written in JSON mode when a command fails.
type ErrorOutput struct {
	Error string `json:"error"`
	Dir   string `json:"dir,omitempty"`
}
