package decoder

// The tables in this file are a versioned data asset mirroring the constant
// sets published by the Android Bluetooth API documentation. They are
// authored by hand and never discovered at runtime; all of them are
// read-only after package initialisation.

// actionClass pairs an action-name prefix with the API class whose
// documentation defines actions under that prefix.
type actionClass struct {
	prefix string
	class  string
}

// actionClasses identifies the Bluetooth API class an action belongs to,
// so log output can show a class name that can be found in the API guides.
// Order matters: the first matching prefix wins.
var actionClasses = []actionClass{
	{"android.bluetooth.a2dp.profile.action.", "BluetoothA2dp"},
	{"android.bluetooth.adapter.action.", "BluetoothAdapter"},
	{"android.bluetooth.device.action.", "BluetoothDevice"},
	{"android.bluetooth.headset.profile.action.", "BluetoothHeadset"},
}

// extraPrefixes lists every extra-key prefix that can be encountered on a
// Bluetooth broadcast. A key under one of these prefixes is a candidate for
// rewriting to its EXTRA_* name.
var extraPrefixes = []string{
	"android.bluetooth.adapter.extra.",
	"android.bluetooth.device.extra.",
	"android.bluetooth.profile.extra.",
	"android.bluetooth.headset.extra.",
}

// extraConstants provides the API constant name for an extra value.
//
// Constant values are reused throughout the Bluetooth API (0 is
// STATE_DISCONNECTED for one extra and AT_CMD_TYPE_READ for another), so
// the value alone cannot identify a name. The lookup key concatenates the
// action name, the extra key and the value's canonical decimal text; the
// concatenation exists only as a key and is never displayed.
var extraConstants = map[string]string{
	// BluetoothA2dp ACTION_CONNECTION_STATE_CHANGED / EXTRA_STATE
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "0": "STATE_DISCONNECTED",
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "1": "STATE_CONNECTING",
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "2": "STATE_CONNECTED",
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "3": "STATE_DISCONNECTING",

	// BluetoothA2dp ACTION_CONNECTION_STATE_CHANGED / EXTRA_PREVIOUS_STATE
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "0": "STATE_DISCONNECTED",
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "1": "STATE_CONNECTING",
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "2": "STATE_CONNECTED",
	"android.bluetooth.a2dp.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "3": "STATE_DISCONNECTING",

	// BluetoothA2dp ACTION_PLAYING_STATE_CHANGED / EXTRA_STATE
	"android.bluetooth.a2dp.profile.action.PLAYING_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "10": "STATE_NOT_PLAYING",
	"android.bluetooth.a2dp.profile.action.PLAYING_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "11": "STATE_PLAYING",

	// BluetoothA2dp ACTION_PLAYING_STATE_CHANGED / EXTRA_PREVIOUS_STATE
	"android.bluetooth.a2dp.profile.action.PLAYING_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "10": "STATE_NOT_PLAYING",
	"android.bluetooth.a2dp.profile.action.PLAYING_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "11": "STATE_PLAYING",

	// BluetoothAdapter ACTION_CONNECTION_STATE_CHANGED / EXTRA_CONNECTION_STATE
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.CONNECTION_STATE" + "0": "STATE_DISCONNECTED",
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.CONNECTION_STATE" + "1": "STATE_CONNECTING",
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.CONNECTION_STATE" + "2": "STATE_CONNECTED",
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.CONNECTION_STATE" + "3": "STATE_DISCONNECTING",

	// BluetoothAdapter ACTION_CONNECTION_STATE_CHANGED / EXTRA_PREVIOUS_CONNECTION_STATE
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_CONNECTION_STATE" + "0": "STATE_DISCONNECTED",
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_CONNECTION_STATE" + "1": "STATE_CONNECTING",
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_CONNECTION_STATE" + "2": "STATE_CONNECTED",
	"android.bluetooth.adapter.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_CONNECTION_STATE" + "3": "STATE_DISCONNECTING",

	// BluetoothAdapter ACTION_SCAN_MODE_CHANGED / EXTRA_SCAN_MODE
	"android.bluetooth.adapter.action.SCAN_MODE_CHANGED" +
		"android.bluetooth.adapter.extra.SCAN_MODE" + "20": "SCAN_MODE_NONE",
	"android.bluetooth.adapter.action.SCAN_MODE_CHANGED" +
		"android.bluetooth.adapter.extra.SCAN_MODE" + "21": "SCAN_MODE_CONNECTABLE",
	"android.bluetooth.adapter.action.SCAN_MODE_CHANGED" +
		"android.bluetooth.adapter.extra.SCAN_MODE" + "23": "SCAN_MODE_CONNECTABLE_DISCOVERABLE",

	// BluetoothAdapter ACTION_SCAN_MODE_CHANGED / EXTRA_PREVIOUS_SCAN_MODE
	"android.bluetooth.adapter.action.SCAN_MODE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_SCAN_MODE" + "20": "SCAN_MODE_NONE",
	"android.bluetooth.adapter.action.SCAN_MODE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_SCAN_MODE" + "21": "SCAN_MODE_CONNECTABLE",
	"android.bluetooth.adapter.action.SCAN_MODE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_SCAN_MODE" + "23": "SCAN_MODE_CONNECTABLE_DISCOVERABLE",

	// BluetoothAdapter ACTION_STATE_CHANGED / EXTRA_STATE
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.STATE" + "10": "STATE_OFF",
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.STATE" + "11": "STATE_TURNING_ON",
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.STATE" + "12": "STATE_ON",
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.STATE" + "13": "STATE_TURNING_OFF",

	// BluetoothAdapter ACTION_STATE_CHANGED / EXTRA_PREVIOUS_STATE
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_STATE" + "10": "STATE_OFF",
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_STATE" + "11": "STATE_TURNING_ON",
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_STATE" + "12": "STATE_ON",
	"android.bluetooth.adapter.action.STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_STATE" + "13": "STATE_TURNING_OFF",

	// ACTION_BOND_STATE_CHANGED / EXTRA_BOND_STATE
	"android.bluetooth.adapter.action.BOND_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.BOND_STATE" + "10": "BOND_NONE",
	"android.bluetooth.adapter.action.BOND_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.BOND_STATE" + "11": "BOND_BONDING",
	"android.bluetooth.adapter.action.BOND_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.BOND_STATE" + "12": "BOND_BONDED",

	// ACTION_BOND_STATE_CHANGED / EXTRA_PREVIOUS_BOND_STATE
	"android.bluetooth.adapter.action.BOND_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_BOND_STATE" + "10": "BOND_NONE",
	"android.bluetooth.adapter.action.BOND_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_BOND_STATE" + "11": "BOND_BONDING",
	"android.bluetooth.adapter.action.BOND_STATE_CHANGED" +
		"android.bluetooth.adapter.extra.PREVIOUS_BOND_STATE" + "12": "BOND_BONDED",

	// BluetoothHeadset ACTION_AUDIO_STATE_CHANGED / EXTRA_STATE
	"android.bluetooth.headset.profile.action.AUDIO_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "10": "STATE_AUDIO_DISCONNECTED",
	"android.bluetooth.headset.profile.action.AUDIO_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "11": "STATE_AUDIO_CONNECTING",
	"android.bluetooth.headset.profile.action.AUDIO_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "12": "STATE_AUDIO_CONNECTED",

	// BluetoothHeadset ACTION_AUDIO_STATE_CHANGED / EXTRA_PREVIOUS_STATE
	"android.bluetooth.headset.profile.action.AUDIO_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "10": "STATE_AUDIO_DISCONNECTED",
	"android.bluetooth.headset.profile.action.AUDIO_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "11": "STATE_AUDIO_CONNECTING",
	"android.bluetooth.headset.profile.action.AUDIO_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "12": "STATE_AUDIO_CONNECTED",

	// BluetoothHeadset ACTION_CONNECTION_STATE_CHANGED / EXTRA_STATE
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "0": "STATE_DISCONNECTED",
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "1": "STATE_CONNECTING",
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "2": "STATE_CONNECTED",
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.STATE" + "3": "STATE_DISCONNECTING",

	// BluetoothHeadset ACTION_CONNECTION_STATE_CHANGED / EXTRA_PREVIOUS_STATE
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "0": "STATE_DISCONNECTED",
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "1": "STATE_CONNECTING",
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "2": "STATE_CONNECTED",
	"android.bluetooth.headset.profile.action.CONNECTION_STATE_CHANGED" +
		"android.bluetooth.profile.extra.PREVIOUS_STATE" + "3": "STATE_DISCONNECTING",

	// BluetoothHeadset ACTION_VENDOR_SPECIFIC_HEADSET_EVENT /
	// EXTRA_VENDOR_SPECIFIC_HEADSET_EVENT_CMD_TYPE
	"android.bluetooth.headset.action.VENDOR_SPECIFIC_HEADSET_EVENT" +
		"android.bluetooth.headset.extra.VENDOR_SPECIFIC_HEADSET_EVENT_CMD_TYPE" + "0": "AT_CMD_TYPE_READ",
	"android.bluetooth.headset.action.VENDOR_SPECIFIC_HEADSET_EVENT" +
		"android.bluetooth.headset.extra.VENDOR_SPECIFIC_HEADSET_EVENT_CMD_TYPE" + "1": "AT_CMD_TYPE_TEST",
	"android.bluetooth.headset.action.VENDOR_SPECIFIC_HEADSET_EVENT" +
		"android.bluetooth.headset.extra.VENDOR_SPECIFIC_HEADSET_EVENT_CMD_TYPE" + "2": "AT_CMD_TYPE_SET",
	"android.bluetooth.headset.action.VENDOR_SPECIFIC_HEADSET_EVENT" +
		"android.bluetooth.headset.extra.VENDOR_SPECIFIC_HEADSET_EVENT_CMD_TYPE" + "3": "AT_CMD_TYPE_BASIC",
	"android.bluetooth.headset.action.VENDOR_SPECIFIC_HEADSET_EVENT" +
		"android.bluetooth.headset.extra.VENDOR_SPECIFIC_HEADSET_EVENT_CMD_TYPE" + "4": "AT_CMD_TYPE_ACTION",
}

// majorDeviceClasses names each major device class code, mirroring
// BluetoothClass.Device.Major.
var majorDeviceClasses = map[int]string{
	0x0000: "MISC",
	0x0100: "COMPUTER",
	0x0200: "PHONE",
	0x0300: "NETWORKING",
	0x0400: "AUDIO_VIDEO",
	0x0500: "PERIPHERAL",
	0x0600: "IMAGING",
	0x0700: "WEARABLE",
	0x0800: "TOY",
	0x0900: "HEALTH",
	0x1F00: "UNCATEGORIZED",
}

// minorDeviceClasses names each full device class code, mirroring
// BluetoothClass.Device.
var minorDeviceClasses = map[int]string{
	0x0100: "COMPUTER_UNCATEGORIZED",
	0x0104: "COMPUTER_DESKTOP",
	0x0108: "COMPUTER_SERVER",
	0x010C: "COMPUTER_LAPTOP",
	0x0110: "COMPUTER_HANDHELD_PC_PDA",
	0x0114: "COMPUTER_PALM_SIZE_PC_PDA",
	0x0118: "COMPUTER_WEARABLE",

	0x0200: "PHONE_UNCATEGORIZED",
	0x0204: "PHONE_CELLULAR",
	0x0208: "PHONE_CORDLESS",
	0x020C: "PHONE_SMART",
	0x0210: "PHONE_MODEM_OR_GATEWAY",
	0x0214: "PHONE_ISDN",

	0x0400: "AUDIO_VIDEO_UNCATEGORIZED",
	0x0404: "AUDIO_VIDEO_WEARABLE_HEADSET",
	0x0408: "AUDIO_VIDEO_HANDSFREE",
	0x0410: "AUDIO_VIDEO_MICROPHONE",
	0x0414: "AUDIO_VIDEO_LOUDSPEAKER",
	0x0418: "AUDIO_VIDEO_HEADPHONES",
	0x041C: "AUDIO_VIDEO_PORTABLE_AUDIO",
	0x0420: "AUDIO_VIDEO_CAR_AUDIO",
	0x0424: "AUDIO_VIDEO_SET_TOP_BOX",
	0x0428: "AUDIO_VIDEO_HIFI_AUDIO",
	0x042C: "AUDIO_VIDEO_VCR",
	0x0430: "AUDIO_VIDEO_VIDEO_CAMERA",
	0x0434: "AUDIO_VIDEO_CAMCORDER",
	0x0438: "AUDIO_VIDEO_VIDEO_MONITOR",
	0x043C: "AUDIO_VIDEO_VIDEO_DISPLAY_AND_LOUDSPEAKER",
	0x0440: "AUDIO_VIDEO_VIDEO_CONFERENCING",
	0x0448: "AUDIO_VIDEO_VIDEO_GAMING_TOY",

	0x0700: "WEARABLE_UNCATEGORIZED",
	0x0704: "WEARABLE_WRIST_WATCH",
	0x0708: "WEARABLE_PAGER",
	0x070C: "WEARABLE_JACKET",
	0x0710: "WEARABLE_HELMET",
	0x0714: "WEARABLE_GLASSES",

	0x0800: "TOY_UNCATEGORIZED",
	0x0804: "TOY_ROBOT",
	0x0808: "TOY_VEHICLE",
	0x080C: "TOY_DOLL_ACTION_FIGURE",
	0x0810: "TOY_CONTROLLER",
	0x0814: "TOY_GAME",

	0x0900: "HEALTH_UNCATEGORIZED",
	0x0904: "HEALTH_BLOOD_PRESSURE",
	0x0908: "HEALTH_THERMOMETER",
	0x090C: "HEALTH_WEIGHING",
	0x0910: "HEALTH_GLUCOSE",
	0x0914: "HEALTH_PULSE_OXIMETER",
	0x0918: "HEALTH_PULSE_RATE",
	0x091C: "HEALTH_DATA_DISPLAY",
}

// extraNames provides the EXTRA_* constant name for each device extra key
// published by the BluetoothDevice API.
var extraNames = map[string]string{
	"android.bluetooth.device.extra.BOND_STATE":          "EXTRA_BOND_STATE",
	"android.bluetooth.device.extra.CLASS":               "EXTRA_CLASS",
	"android.bluetooth.device.extra.DEVICE":              "EXTRA_DEVICE",
	"android.bluetooth.device.extra.NAME":                "EXTRA_NAME",
	"android.bluetooth.device.extra.PAIRING_KEY":         "EXTRA_PAIRING_KEY",
	"android.bluetooth.device.extra.PAIRING_VARIANT":     "EXTRA_PAIRING_VARIANT",
	"android.bluetooth.device.extra.PREVIOUS_BOND_STATE": "EXTRA_PREVIOUS_BOND_STATE",
	"android.bluetooth.device.extra.RSSI":                "EXTRA_RSSI",
	"android.bluetooth.device.extra.UUID":                "EXTRA_UUID",
}
