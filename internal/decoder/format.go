package decoder

import "github.com/phonedeveloper/btlogd/internal/intent"

// formatExtra lays out one decoded extra as a single log line.
//
// The verbose layout shows labels, the raw form in parentheses and the
// value's type name; the compact layout shows only the key and whichever
// of the two forms is meaningful. The verbose spacing and punctuation are
// the product; log consumers parse these lines by eye, and the exact
// text is preserved, quirks included.
func formatExtra(rawKey string, d decoded, verbose, deviceTypeAvailable bool) string {
	key := displayKey(rawKey, verbose)

	if !verbose {
		// Compact: show the resolved form when one exists, the raw form
		// otherwise, never both.
		resolved, raw := "", d.raw
		if d.hasResolved {
			resolved, raw = d.resolved, ""
		}
		return key + " " + resolved + raw
	}

	var (
		resolvedPrefix, resolvedSuffix string
		rawPrefix, rawSuffix           string
		typePrefix                     string
	)
	resolved := d.resolved
	raw := d.raw

	switch {
	case d.hasResolved:
		switch d.kind {
		case intent.KindDevice:
			if deviceTypeAvailable {
				resolvedPrefix = "Device Name/Type/Address: "
			} else {
				resolvedPrefix = "Device Name/Address: "
			}
			resolvedSuffix = "   "
			raw = ""
		case intent.KindDeviceClass:
			resolvedPrefix = "Device Major/Class: "
			resolvedSuffix = "   "
			raw = ""
		default:
			resolvedPrefix = "Value: "
			resolvedSuffix = " "
			if resolved == notParsedMarker {
				raw = ""
			} else {
				rawPrefix = "("
				rawSuffix = ")   "
			}
		}

	case raw != "":
		rawPrefix = "Value: "
		rawSuffix = "   "
	}

	if d.typeName != "" {
		typePrefix = "Type: "
	}

	return "Extra: " + key + "   " +
		resolvedPrefix + resolved + resolvedSuffix +
		rawPrefix + raw + rawSuffix +
		typePrefix + d.typeName
}
