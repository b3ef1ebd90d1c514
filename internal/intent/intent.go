package intent

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Event is a single forwarded broadcast intent.
type Event struct {
	// Action is the broadcast action name, e.g.
	// "android.bluetooth.adapter.action.STATE_CHANGED". Required.
	Action string `json:"action"`

	// Extras maps extra keys to their typed values. A nil entry is an
	// extra that was present on the broadcast without a value.
	Extras map[string]*Value `json:"extras,omitempty"`
}

// Kind identifies the shape of an extra value.
type Kind int

// Value shapes, one per rendering rule in the decoder.
const (
	KindUnknown Kind = iota
	KindString
	KindInt
	KindShort
	KindLong
	KindBool
	KindDevice
	KindDeviceClass
)

// Wire type tags, as emitted by the forwarder.
const (
	TypeString      = "string"
	TypeInt         = "int"
	TypeShort       = "short"
	TypeLong        = "long"
	TypeBool        = "bool"
	TypeDevice      = "device"
	TypeDeviceClass = "device_class"
)

// Device identifies a remote Bluetooth peer. Any field may be absent:
// the name is unavailable while Bluetooth is disconnected, and the type
// code is only reported by forwarders running on platforms that expose it.
type Device struct {
	Name    *string `json:"name,omitempty"`
	Type    *int    `json:"type,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Device type codes as published by the platform API.
const (
	DeviceTypeClassic = 1
	DeviceTypeLE      = 2
	DeviceTypeDual    = 3
)

// DeviceClass carries a peer's advertised major and minor device class codes.
type DeviceClass struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// Value is a tagged variant over the extra value shapes.
//
// Exactly one of the payload fields is meaningful, selected by Kind.
// TypeName always holds the wire tag as received, including tags the
// decoder does not recognise.
type Value struct {
	Kind     Kind
	TypeName string

	Str         string
	Int         int64 // int, short and long extras
	Bool        bool
	Device      *Device
	DeviceClass *DeviceClass
}

// wireValue is the JSON shape of a tagged extra value.
type wireValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// UnmarshalJSON decodes a tagged extra value.
//
// A malformed payload for a known tag is an error (the forwarder broke its
// own contract), but an unknown tag is not: it yields a KindUnknown value
// so the decoder can render its "(not parsed)" fallback.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("intent: decoding value: %w", err)
	}

	v.TypeName = w.Type

	switch w.Type {
	case TypeString:
		v.Kind = KindString
		return v.decodePayload(w, &v.Str)
	case TypeInt:
		v.Kind = KindInt
		return v.decodePayload(w, &v.Int)
	case TypeShort:
		v.Kind = KindShort
		return v.decodePayload(w, &v.Int)
	case TypeLong:
		v.Kind = KindLong
		return v.decodePayload(w, &v.Int)
	case TypeBool:
		v.Kind = KindBool
		return v.decodePayload(w, &v.Bool)
	case TypeDevice:
		v.Kind = KindDevice
		v.Device = &Device{}
		return v.decodePayload(w, v.Device)
	case TypeDeviceClass:
		v.Kind = KindDeviceClass
		v.DeviceClass = &DeviceClass{}
		return v.decodePayload(w, v.DeviceClass)
	default:
		v.Kind = KindUnknown
		return nil
	}
}

// decodePayload unmarshals the value payload into dst.
func (v *Value) decodePayload(w wireValue, dst any) error {
	if len(w.Value) == 0 {
		return fmt.Errorf("intent: %s value missing payload", w.Type)
	}
	if err := json.Unmarshal(w.Value, dst); err != nil {
		return fmt.Errorf("intent: decoding %s value: %w", w.Type, err)
	}
	return nil
}

// MarshalJSON encodes the value back into its tagged wire shape.
// Used by tests and the history recorder; round-trips with UnmarshalJSON.
func (v *Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Kind {
	case KindString:
		payload = v.Str
	case KindInt, KindShort, KindLong:
		payload = v.Int
	case KindBool:
		payload = v.Bool
	case KindDevice:
		payload = v.Device
	case KindDeviceClass:
		payload = v.DeviceClass
	case KindUnknown:
		return json.Marshal(map[string]string{"type": v.TypeName})
	}
	return json.Marshal(map[string]any{"type": v.TypeName, "value": payload})
}

// IntText returns the canonical decimal text of an integer-like value.
// Constant-table keys are built from this form.
func (v *Value) IntText() string {
	return strconv.FormatInt(v.Int, 10)
}

// Parse decodes a forwarded intent from its JSON wire form.
func Parse(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("intent: decoding event: %w", err)
	}
	if ev.Action == "" {
		return Event{}, fmt.Errorf("intent: event has no action")
	}
	return ev, nil
}
