// Package renamer applies a rename table to one directory.
//
// Every entry renames a primary file and, when present, its ".meta" companion.
// Only the primary rename decides the entry's outcome: the metadata rename is a
// second, best-effort step whose failure is recorded on the entry but never
// turns a renamed entry into an error, and never rolls the primary back.
package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/leapstack-labs/uirename/internal/table"
)

// Outcome is the recorded result of one table entry.
type Outcome string

const (
	OutcomeRenamed Outcome = "renamed"
	OutcomeSkipped Outcome = "skipped"
	OutcomeErrored Outcome = "errored"
)

// SkipReason is the message attached to skipped entries.
const SkipReason = "already renamed or not found"

// EntryResult is the outcome of one entry.
type EntryResult struct {
	Entry   table.Entry
	Outcome Outcome
	Err     error // set when Outcome is OutcomeErrored

	// Metadata step, only attempted for renamed entries.
	MetaFound   bool
	MetaRenamed bool
	MetaErr     error
}

// Result holds the counters and per-entry results of one run.
type Result struct {
	RunID     string
	Dir       string
	Entries   []EntryResult
	Succeeded int
	Skipped   int
	Errored   int
}

// Total returns the number of entries processed.
func (r *Result) Total() int {
	return r.Succeeded + r.Skipped + r.Errored
}

func (r *Result) record(er EntryResult) {
	switch er.Outcome {
	case OutcomeRenamed:
		r.Succeeded++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeErrored:
		r.Errored++
	}
	r.Entries = append(r.Entries, er)
}

// Observer is called once per entry, as soon as its outcome is known.
type Observer func(EntryResult)

// Renamer renames table entries on a filesystem.
type Renamer struct {
	fs       afero.Fs
	logger   *slog.Logger
	observer Observer
}

// Option configures a Renamer.
type Option func(*Renamer)

// WithLogger sets the logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renamer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver sets the per-entry callback.
func WithObserver(o Observer) Option {
	return func(r *Renamer) { r.observer = o }
}

// New creates a Renamer over fsys. A nil fsys means the OS filesystem.
func New(fsys afero.Fs, opts ...Option) *Renamer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	r := &Renamer{
		fs:     fsys,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CheckDirectory returns a *DirectoryError unless dir exists and is a directory.
func CheckDirectory(fsys afero.Fs, dir string) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		return &DirectoryError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return &DirectoryError{Dir: dir}
	}
	return nil
}

// Run processes every entry of tbl in order inside dir. The only error it
// returns is a failed directory check, in which case no entry is touched.
// Per-entry failures are reported through the Result.
func (r *Renamer) Run(dir string, tbl table.Table) (*Result, error) {
	if err := CheckDirectory(r.fs, dir); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   uuid.NewString(),
		Dir:     dir,
		Entries: make([]EntryResult, 0, tbl.Len()),
	}
	log := r.logger.With("run_id", res.RunID, "dir", dir)
	log.Debug("starting rename run", "entries", tbl.Len())

	for _, e := range tbl {
		er := r.processEntry(log, dir, e)
		res.record(er)
		if r.observer != nil {
			r.observer(er)
		}
	}

	log.Debug("rename run finished",
		"succeeded", res.Succeeded,
		"skipped", res.Skipped,
		"errored", res.Errored)
	return res, nil
}

func (r *Renamer) processEntry(log *slog.Logger, dir string, e table.Entry) EntryResult {
	er := EntryResult{Entry: e}
	oldPath := filepath.Join(dir, e.Old)

	found, err := r.exists(oldPath)
	if err != nil {
		er.Outcome = OutcomeErrored
		er.Err = fmt.Errorf("stat %s: %w", e.Old, err)
		log.Warn("cannot check file", "file", e.Old, "error", err)
		return er
	}
	if !found {
		er.Outcome = OutcomeSkipped
		log.Debug("skipping entry", "file", e.Old, "reason", SkipReason)
		return er
	}

	if err := r.rename(dir, e.Old, e.New); err != nil {
		er.Outcome = OutcomeErrored
		er.Err = err
		log.Warn("rename failed", "file", e.Old, "error", err)
		return er
	}
	er.Outcome = OutcomeRenamed
	log.Debug("renamed", "from", e.Old, "to", e.New)

	// Metadata companion, best effort.
	metaFound, err := r.exists(filepath.Join(dir, e.OldMeta()))
	switch {
	case err != nil:
		er.MetaErr = fmt.Errorf("stat %s: %w", e.OldMeta(), err)
	case metaFound:
		er.MetaFound = true
		if err := r.rename(dir, e.OldMeta(), e.NewMeta()); err != nil {
			er.MetaErr = err
		} else {
			er.MetaRenamed = true
		}
	}
	if er.MetaErr != nil {
		log.Warn("metadata rename failed", "file", e.OldMeta(), "error", er.MetaErr)
	}
	return er
}

// rename moves oldName to newName inside dir, refusing to replace an existing
// file at the destination.
func (r *Renamer) rename(dir, oldName, newName string) error {
	newPath := filepath.Join(dir, newName)
	taken, err := r.exists(newPath)
	if err != nil {
		return &RenameError{Old: oldName, New: newName, Err: err}
	}
	if taken {
		return &RenameError{Old: oldName, New: newName, Err: fs.ErrExist}
	}
	if err := r.fs.Rename(filepath.Join(dir, oldName), newPath); err != nil {
		return &RenameError{Old: oldName, New: newName, Err: unwrapLinkError(err)}
	}
	return nil
}

func (r *Renamer) exists(path string) (bool, error) {
	_, err := r.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// unwrapLinkError drops the *os.LinkError wrapper, whose message repeats both
// full paths already carried by RenameError.
func unwrapLinkError(err error) error {
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err
	}
	return err
}
