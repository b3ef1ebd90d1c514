package decoder

import (
	"strconv"

	"github.com/phonedeveloper/btlogd/internal/intent"
)

// DecodeMusic renders a music player intent.
//
// This family carries no documented symbolic states, so there is no
// constant resolution and no verbosity mode: the action is logged as-is,
// followed by one fixed-layout line per extra that has a value. Only
// scalar shapes render; anything else shows a typed not-parsed marker.
func DecodeMusic(ev intent.Event) []string {
	lines := []string{"Action: " + ev.Action}

	for _, key := range sortedKeys(ev.Extras) {
		v := ev.Extras[key]
		if v == nil {
			continue
		}
		lines = append(lines,
			"  Extra: \""+key+"\""+
				"   Type: "+v.TypeName+
				"   Value: "+musicValue(v))
	}
	return lines
}

// musicValue renders the scalar shapes the music family is known to carry.
func musicValue(v *intent.Value) string {
	switch v.Kind {
	case intent.KindString:
		return "\"" + v.Str + "\""
	case intent.KindInt, intent.KindLong:
		return strconv.FormatInt(v.Int, 10)
	case intent.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return "(not parsed, type = " + v.TypeName + ")"
	}
}
