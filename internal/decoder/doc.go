// Package decoder turns forwarded broadcast intents into human-readable
// diagnostic log lines.
//
// The engine is table-driven: static symbol tables map action prefixes to
// the Bluetooth API classes that document them, composite
// action+key+value keys to API constant names, numeric device class codes
// to their published names, and raw extra keys to their EXTRA_* forms.
// Per-extra decoding dispatches on the value's shape (string, integer
// widths, bool, device descriptor, device class descriptor) and falls
// back to a generic rendering for anything unrecognised.
//
// Two layouts exist, selected per call: verbose (labels, raw forms in
// parentheses, type names) and compact (key and resolved value only). A
// simpler sibling handles music player intents with a single fixed layout
// and no symbol tables.
//
// Decoding never fails. Unknown actions, unmapped keys, missing constant
// entries, out-of-range class codes and unsupported value shapes all have
// defined, displayable renderings; a malformed event is still a loggable
// event.
//
// # Thread Safety
//
// All tables are read-only after package initialisation and the decode
// functions carry no state between calls, so concurrent decodes from
// multiple delivery goroutines are safe without locking.
package decoder
