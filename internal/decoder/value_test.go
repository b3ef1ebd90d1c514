package decoder

import (
	"testing"

	"github.com/phonedeveloper/btlogd/internal/intent"
)

const (
	stateChangedAction = "android.bluetooth.adapter.action.STATE_CHANGED"
	stateExtraKey      = "android.bluetooth.adapter.extra.STATE"
)

func intValue(n int64) *intent.Value {
	return &intent.Value{Kind: intent.KindInt, TypeName: intent.TypeInt, Int: n}
}

func strValue(s string) *intent.Value {
	return &intent.Value{Kind: intent.KindString, TypeName: intent.TypeString, Str: s}
}

func ptr[T any](v T) *T { return &v }

func TestDecodeValueConstantLookup(t *testing.T) {
	tests := []struct {
		name         string
		action, key  string
		value        *intent.Value
		wantResolved string
		wantHas      bool
		wantRaw      string
	}{
		{
			name:         "mapped integer resolves to constant name",
			action:       stateChangedAction,
			key:          stateExtraKey,
			value:        intValue(12),
			wantResolved: "STATE_ON",
			wantHas:      true,
			wantRaw:      "12",
		},
		{
			name:    "unmapped integer keeps raw text",
			action:  stateChangedAction,
			key:     stateExtraKey,
			value:   intValue(99),
			wantHas: false,
			wantRaw: "99",
		},
		{
			name:    "mapped value under wrong action does not resolve",
			action:  "android.bluetooth.adapter.action.SCAN_MODE_CHANGED",
			key:     stateExtraKey,
			value:   intValue(12),
			wantHas: false,
			wantRaw: "12",
		},
		{
			name:    "unmapped string is quoted",
			action:  stateChangedAction,
			key:     "android.bluetooth.device.extra.NAME",
			value:   strValue("My Headset"),
			wantHas: false,
			wantRaw: "\"My Headset\"",
		},
		{
			name:         "vendor headset command type resolves",
			action:       "android.bluetooth.headset.action.VENDOR_SPECIFIC_HEADSET_EVENT",
			key:          "android.bluetooth.headset.extra.VENDOR_SPECIFIC_HEADSET_EVENT_CMD_TYPE",
			value:        intValue(2),
			wantResolved: "AT_CMD_TYPE_SET",
			wantHas:      true,
			wantRaw:      "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decodeValue(tt.action, tt.key, tt.value, true)
			if d.hasResolved != tt.wantHas {
				t.Fatalf("hasResolved = %v, want %v", d.hasResolved, tt.wantHas)
			}
			if d.resolved != tt.wantResolved {
				t.Errorf("resolved = %q, want %q", d.resolved, tt.wantResolved)
			}
			if d.raw != tt.wantRaw {
				t.Errorf("raw = %q, want %q", d.raw, tt.wantRaw)
			}
		})
	}
}

func TestDecodeValueBool(t *testing.T) {
	d := decodeValue(stateChangedAction, stateExtraKey,
		&intent.Value{Kind: intent.KindBool, TypeName: intent.TypeBool, Bool: true}, true)
	if d.hasResolved {
		t.Error("bool values must not consult the constant table")
	}
	if d.raw != "true" {
		t.Errorf("raw = %q, want %q", d.raw, "true")
	}

	d = decodeValue(stateChangedAction, stateExtraKey,
		&intent.Value{Kind: intent.KindBool, TypeName: intent.TypeBool, Bool: false}, true)
	if d.raw != "false" {
		t.Errorf("raw = %q, want %q", d.raw, "false")
	}
}

func TestDecodeValueAbsent(t *testing.T) {
	d := decodeValue(stateChangedAction, stateExtraKey, nil, true)
	if d.hasResolved || d.resolved != "" || d.raw != "" || d.typeName != "" {
		t.Errorf("absent value must decode to empty forms, got %+v", d)
	}
}

func TestFormatDevice(t *testing.T) {
	tests := []struct {
		name          string
		device        *intent.Device
		typeAvailable bool
		want          string
	}{
		{
			name: "full descriptor",
			device: &intent.Device{
				Name:    ptr("Buds"),
				Type:    ptr(intent.DeviceTypeClassic),
				Address: ptr("00:11:22:33:44:55"),
			},
			typeAvailable: true,
			want:          "\"Buds\"/DEVICE_TYPE_CLASSIC/00:11:22:33:44:55",
		},
		{
			name: "low energy type",
			device: &intent.Device{
				Name:    ptr("Tag"),
				Type:    ptr(intent.DeviceTypeLE),
				Address: ptr("AA:BB:CC:DD:EE:FF"),
			},
			typeAvailable: true,
			want:          "\"Tag\"/DEVICE_TYPE_LE/AA:BB:CC:DD:EE:FF",
		},
		{
			name: "missing name renders null",
			device: &intent.Device{
				Type:    ptr(intent.DeviceTypeDual),
				Address: ptr("00:11:22:33:44:55"),
			},
			typeAvailable: true,
			want:          "null/DEVICE_TYPE_DUAL/00:11:22:33:44:55",
		},
		{
			name: "unknown type code renders unavailable",
			device: &intent.Device{
				Name:    ptr("X"),
				Type:    ptr(0),
				Address: ptr("00:11:22:33:44:55"),
			},
			typeAvailable: true,
			want:          "\"X\"/unavailable/00:11:22:33:44:55",
		},
		{
			name: "type segment omitted when capability missing",
			device: &intent.Device{
				Name:    ptr("Buds"),
				Type:    ptr(intent.DeviceTypeClassic),
				Address: ptr("00:11:22:33:44:55"),
			},
			typeAvailable: false,
			want:          "\"Buds\"00:11:22:33:44:55",
		},
		{
			name:          "everything missing",
			device:        &intent.Device{},
			typeAvailable: true,
			want:          "null/unavailable/unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDevice(tt.device, tt.typeAvailable); got != tt.want {
				t.Errorf("formatDevice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDeviceClass(t *testing.T) {
	tests := []struct {
		name         string
		major, minor int
		want         string
	}{
		{
			name:  "both halves match",
			major: 0x0400, minor: 0x0418,
			want: "AUDIO_VIDEO/AUDIO_VIDEO_HEADPHONES",
		},
		{
			name:  "major only",
			major: 0x0400, minor: 0x7777,
			want: "AUDIO_VIDEO/unrecognized",
		},
		{
			name:  "minor only",
			major: 0x4242, minor: 0x0704,
			want: "unrecognized/WEARABLE_WRIST_WATCH",
		},
		{
			name:  "neither half matches",
			major: 0x4242, minor: 0x7777,
			want: "unrecognized/unrecognized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDeviceClass(&intent.DeviceClass{Major: tt.major, Minor: tt.minor})
			if got != tt.want {
				t.Errorf("formatDeviceClass(%#x, %#x) = %q, want %q", tt.major, tt.minor, got, tt.want)
			}
		})
	}
}

func TestDecodeValueUnknownShape(t *testing.T) {
	d := decodeValue(stateChangedAction, stateExtraKey,
		&intent.Value{Kind: intent.KindUnknown, TypeName: "parcelable"}, true)
	if !d.hasResolved || d.resolved != "(not parsed)" {
		t.Errorf("resolved = %q, want %q", d.resolved, "(not parsed)")
	}
	if d.raw != "" {
		t.Errorf("raw = %q, want blank", d.raw)
	}
	if d.typeName != "parcelable" {
		t.Errorf("typeName = %q, want %q", d.typeName, "parcelable")
	}
}
