package decoder

import "strings"

// unknownClass is the class label for actions outside the known prefixes.
// An unmatched action is a valid, displayable outcome, not an error.
const unknownClass = "(unknown class)"

// classifyAction resolves a raw action name into the API class that
// documents it and a constant-style action name.
//
// The first matching prefix in actionClasses wins; the remainder of the
// action becomes "ACTION_<remainder>" to match the name the API guides
// use. Unmatched actions come back as ("(unknown class)", action).
func classifyAction(action string) (class, name string) {
	for _, ac := range actionClasses {
		if strings.HasPrefix(action, ac.prefix) {
			return ac.class, "ACTION_" + action[len(ac.prefix):]
		}
	}
	return unknownClass, action
}

// Family buckets an action into one of the routing families Decode uses.
// History records are tagged with this value.
func Family(action string) string {
	switch {
	case strings.HasPrefix(action, "android.bluetooth"):
		return "bluetooth"
	case strings.HasPrefix(action, "com.android.music"):
		return "music"
	default:
		return "unfamiliar"
	}
}
