package decoder

import "strings"

// displayKey rewrites a raw extra key so it appears as found in the API
// documentation.
//
// Only the first matching prefix is considered. If the full raw key has a
// documented EXTRA_* name, verbose output keeps both forms
// ("EXTRA_DEVICE (android.bluetooth.device.extra.DEVICE)") while compact
// output keeps only the symbolic name. Keys with no prefix match, or with
// a prefix match but no table entry, pass through unchanged.
func displayKey(key string, verbose bool) string {
	for _, prefix := range extraPrefixes {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name, ok := extraNames[key]
		if !ok {
			break
		}
		if verbose {
			return name + " (" + key + ")"
		}
		return name
	}
	return key
}
