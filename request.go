package kittypal

import (
	"errors"
	"fmt"
	"strings"
)

// Action is the operation requested on the command line.
type Action string

// Actions. Exactly one per invocation.
const (
	ActionRandom  Action = "random"
	ActionShuffle Action = "shuffle"
	ActionBackup  Action = "backup"
	ActionLoad    Action = "load"
	ActionColours Action = "colours"
	ActionSet     Action = "set"
	ActionList    Action = "list"
)

// Request is a single command: one action plus its options. Build one from
// parsed flags and call Validate before acting on it.
type Request struct {
	Action Action
	// Name selects the backup record for backup and load. Empty selects the
	// default record.
	Name string
	// Only restricts random and shuffle to these slots, and names the
	// target slots for set. Mutually exclusive with Except.
	Only []Slot
	// Except excludes these slots from random and shuffle.
	Except []Slot
	// SetColors holds the parsed --hex colours for set, one per slot in Only.
	SetColors []Color
	// DryRun previews the config rewrite as a diff instead of writing it.
	DryRun bool
}

// Validate checks that the request is well formed: a known action combined
// only with the options that action supports.
func (r Request) Validate() error {
	switch r.Action {
	case ActionRandom, ActionShuffle, ActionBackup, ActionLoad, ActionColours, ActionSet, ActionList:
	case "":
		return errors.New("no action specified")
	default:
		return fmt.Errorf("unknown action %q", r.Action)
	}

	if len(r.Only) > 0 && len(r.Except) > 0 {
		return errors.New("--exception and --force cannot be used together")
	}

	switch r.Action {
	case ActionRandom, ActionShuffle:
		if len(r.SetColors) > 0 {
			return errors.New("--hex can only be used with --set-colour")
		}
	case ActionSet:
		if len(r.Except) > 0 {
			return errors.New("--exception cannot be used with --set-colour")
		}
		if len(r.Only) == 0 {
			return errors.New("--set-colour requires --force to name the target slots")
		}
		if len(r.SetColors) != len(r.Only) {
			return fmt.Errorf("--set-colour needs one --hex value per --force slot (have %d slots, %d values)", len(r.Only), len(r.SetColors))
		}
	default:
		if len(r.Only) > 0 || len(r.Except) > 0 {
			return errors.New("--exception and --force can only be used with --random, --shuffle or --set-colour")
		}
		if len(r.SetColors) > 0 {
			return errors.New("--hex can only be used with --set-colour")
		}
	}

	switch r.Action {
	case ActionBackup, ActionLoad:
		if err := validateBackupName(r.Name); err != nil {
			return err
		}
	default:
		if r.Name != "" {
			return errors.New("--name can only be used with --backup or --load")
		}
	}

	if r.DryRun {
		switch r.Action {
		case ActionRandom, ActionShuffle, ActionLoad, ActionSet:
		default:
			return fmt.Errorf("--dry-run has no effect on --%s", r.Action)
		}
	}

	return nil
}

// validateBackupName rejects names that cannot serve as a plain file name
// inside the backup directory.
func validateBackupName(name string) error {
	if name == "" {
		return nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid backup name %q: must be a plain file name", name)
	}
	return nil
}
