package decoder

import (
	"sort"

	"github.com/phonedeveloper/btlogd/internal/intent"
)

// Options selects the output layout and the platform capabilities the
// decoder may assume. The verbosity flag is read from the settings store
// on every event by the caller; the decoder itself holds no state.
type Options struct {
	// Verbose selects the labelled layout with raw forms and type names.
	Verbose bool

	// DeviceTypeAvailable reports whether the observed platform exposes
	// the device-type field on device descriptors. When false the type
	// segment is omitted from device renderings entirely.
	DeviceTypeAvailable bool
}

// Banner lines separating intent entries in the log stream.
const (
	bluetoothBanner  = "--------------------New Bluetooth Broadcast Intent-------------------"
	musicBanner      = "--------------------New Android Music Broadcast Intent---------------"
	unfamiliarBanner = "--------------------Unfamiliar Intent--------------------------------"
)

// Decode renders a forwarded intent as log lines, routing by action family.
//
// Bluetooth intents get the full table-driven treatment, music player
// intents the simpler scalar rendering, and anything else a banner plus
// the raw action. Decode is pure: same inputs, same lines.
func Decode(ev intent.Event, opts Options) []string {
	switch Family(ev.Action) {
	case "bluetooth":
		return append([]string{bluetoothBanner}, DecodeBluetooth(ev, opts)...)
	case "music":
		return append([]string{musicBanner}, DecodeMusic(ev)...)
	default:
		return []string{unfamiliarBanner, ev.Action}
	}
}

// DecodeBluetooth renders a Bluetooth intent.
//
// The first line names the API class and action. Verbose mode adds the
// unmodified action string, then each extra becomes one line. An intent
// without extras produces a single notice line instead.
func DecodeBluetooth(ev intent.Event, opts Options) []string {
	class, name := classifyAction(ev.Action)

	lines := []string{class + "." + name}
	if opts.Verbose {
		lines = append(lines, "Action: "+ev.Action)
	}

	if len(ev.Extras) == 0 {
		return append(lines, "...Intent has no extras.")
	}

	for _, key := range sortedKeys(ev.Extras) {
		d := decodeValue(ev.Action, key, ev.Extras[key], opts.DeviceTypeAvailable)
		lines = append(lines, formatExtra(key, d, opts.Verbose, opts.DeviceTypeAvailable))
	}
	return lines
}

// sortedKeys returns the extra keys in lexical order so a repeated event
// always renders identically.
func sortedKeys(extras map[string]*intent.Value) []string {
	keys := make([]string, 0, len(extras))
	for k := range extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
