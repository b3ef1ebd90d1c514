package decoder

import (
	"strings"

	"github.com/phonedeveloper/btlogd/internal/intent"
)

// notParsedMarker is rendered for value shapes the decoder has no rule for.
const notParsedMarker = "(not parsed)"

// decoded holds the renderings of one extra value.
//
// resolved is the symbolic form recovered from the constant tables (or
// built from a structured value); raw is the value's own textual form.
// Either may be blank. typeName is empty when the extra carried no value
// at all.
type decoded struct {
	resolved    string
	hasResolved bool
	raw         string
	kind        intent.Kind
	typeName    string
}

// decodeValue turns an extra's typed value into its display forms.
//
// Dispatch is by value shape. Scalars consult the constant table keyed by
// action+key+text; structured values build their resolved form directly.
// Every shape, including unrecognised ones and out-of-range codes, yields
// a defined result. The decoder has no failure outcome.
func decodeValue(action, key string, v *intent.Value, deviceTypeAvailable bool) decoded {
	if v == nil {
		// Extra present with no value: only the key is displayed.
		return decoded{}
	}

	d := decoded{kind: v.Kind, typeName: v.TypeName}

	switch v.Kind {
	case intent.KindString:
		if name, ok := extraConstants[action+key+v.Str]; ok {
			d.resolved = name
			d.hasResolved = true
			d.raw = v.Str
		} else {
			d.raw = "\"" + v.Str + "\""
		}

	case intent.KindInt, intent.KindShort, intent.KindLong:
		text := v.IntText()
		d.raw = text
		if name, ok := extraConstants[action+key+text]; ok {
			d.resolved = name
			d.hasResolved = true
		}

	case intent.KindBool:
		// No table lookup: boolean extras carry no documented constants.
		if v.Bool {
			d.raw = "true"
		} else {
			d.raw = "false"
		}

	case intent.KindDevice:
		d.resolved = formatDevice(v.Device, deviceTypeAvailable)
		d.hasResolved = true

	case intent.KindDeviceClass:
		d.resolved = formatDeviceClass(v.DeviceClass)
		d.hasResolved = true

	default:
		d.resolved = notParsedMarker
		d.hasResolved = true
	}

	return d
}

// formatDevice renders a device descriptor as name, type and address,
// concatenated the way the diagnostic output has always shown them.
//
// The type segment is capability-gated: it is emitted only when the
// observed platform exposes the device-type field, otherwise it is
// omitted entirely.
func formatDevice(dev *intent.Device, deviceTypeAvailable bool) string {
	var b strings.Builder

	if dev.Name != nil {
		b.WriteString("\"" + *dev.Name + "\"")
	} else {
		// The device name is not available while Bluetooth is disconnected.
		b.WriteString("null")
	}

	if deviceTypeAvailable {
		b.WriteString(deviceTypeLabel(dev.Type))
	}

	if dev.Address != nil {
		b.WriteString(*dev.Address)
	} else {
		b.WriteString("unavailable")
	}

	return b.String()
}

// deviceTypeLabel maps a device type code to its slash-delimited symbolic
// segment. Codes outside the published set render as "/unavailable/".
func deviceTypeLabel(code *int) string {
	if code == nil {
		return "/unavailable/"
	}
	switch *code {
	case intent.DeviceTypeClassic:
		return "/DEVICE_TYPE_CLASSIC/"
	case intent.DeviceTypeLE:
		return "/DEVICE_TYPE_LE/"
	case intent.DeviceTypeDual:
		return "/DEVICE_TYPE_DUAL/"
	default:
		return "/unavailable/"
	}
}

// formatDeviceClass renders a device class descriptor as
// "<majorName>/<minorName>". The two halves resolve independently, each
// falling back to "unrecognized" when its code is absent from its table.
func formatDeviceClass(dc *intent.DeviceClass) string {
	major, ok := majorDeviceClasses[dc.Major]
	if !ok {
		major = "unrecognized"
	}
	minor, ok := minorDeviceClasses[dc.Minor]
	if !ok {
		minor = "unrecognized"
	}
	return major + "/" + minor
}
