package backupmgr

import "github.com/fsnotify/fsnotify"

// Action is the classifier's verdict for one (event kind, path) pair.
type Action int

const (
	// ActionSkipUntracked: the path is not one of the tracked save files.
	ActionSkipUntracked Action = iota

	// ActionSkipRename: a tracked path is being renamed away. The game never
	// saves through renames, so this is ignored on purpose; whatever
	// recreates the tracked name gets classified on its own event.
	ActionSkipRename

	// ActionSkipUnexpected: any other kind on a tracked path. Also ignored,
	// but worth logging louder than a rename since it is not supposed to
	// happen during normal play.
	ActionSkipUnexpected

	// ActionBackup: a tracked save file reported a content change.
	ActionBackup
)

func (a Action) String() string {
	switch a {
	case ActionBackup:
		return "backup"
	case ActionSkipRename:
		return "skip-rename"
	case ActionSkipUnexpected:
		return "skip-unexpected"
	default:
		return "skip-untracked"
	}
}

// Classify decides what to do about one notification path. Pure function of
// its inputs.
//
// The game saves by modifying local.sav in place, which the watch primitive
// reports as a plain write. Any op carrying the write bit stays actionable
// even when combined with others, so finer-grained platforms cannot narrow
// the behavior.
func Classify(op fsnotify.Op, path, gameRoot string) Action {
	if !IsTrackedPath(gameRoot, path) {
		return ActionSkipUntracked
	}
	switch {
	case op.Has(fsnotify.Write):
		return ActionBackup
	case op.Has(fsnotify.Rename):
		return ActionSkipRename
	default:
		return ActionSkipUnexpected
	}
}
