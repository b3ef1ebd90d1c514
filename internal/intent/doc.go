// Package intent defines the wire model for forwarded broadcast intents.
//
// A companion forwarder running on the observed device republishes each
// platform broadcast as a JSON document on the MQTT bus. An intent carries
// an action name and zero or more named, typed extras:
//
//	{
//	  "action": "android.bluetooth.adapter.action.STATE_CHANGED",
//	  "extras": {
//	    "android.bluetooth.adapter.extra.STATE": {"type": "int", "value": 12}
//	  }
//	}
//
// Extras are tagged values. The tag set mirrors the value shapes the
// decoder can render: string, int, short, long, bool, device and
// device_class. Unrecognised tags decode to an Unknown value that retains
// the tag for display; decoding a forwarded intent never fails on an
// unfamiliar value shape.
//
// The package is a pure data model: no I/O, no platform calls. The decoder
// package turns these values into readable log lines.
package intent
