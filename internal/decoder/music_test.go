package decoder

import (
	"reflect"
	"testing"

	"github.com/phonedeveloper/btlogd/internal/intent"
)

func TestDecodeMusic(t *testing.T) {
	ev := intent.Event{
		Action: "com.android.music.playstatechanged",
		Extras: map[string]*intent.Value{
			"artist":   strValue("The Shins"),
			"id":       {Kind: intent.KindLong, TypeName: intent.TypeLong, Int: 28},
			"playing":  {Kind: intent.KindBool, TypeName: intent.TypeBool, Bool: true},
			"position": intValue(73000),
			"art":      {Kind: intent.KindUnknown, TypeName: "bitmap"},
			"ignored":  nil,
		},
	}

	got := DecodeMusic(ev)
	want := []string{
		"Action: com.android.music.playstatechanged",
		"  Extra: \"art\"   Type: bitmap   Value: (not parsed, type = bitmap)",
		"  Extra: \"artist\"   Type: string   Value: \"The Shins\"",
		"  Extra: \"id\"   Type: long   Value: 28",
		"  Extra: \"playing\"   Type: bool   Value: true",
		"  Extra: \"position\"   Type: int   Value: 73000",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestDecodeMusicShortNotParsed(t *testing.T) {
	// The music family's scalar set does not include shorts; they fall to
	// the typed not-parsed marker rather than rendering as integer text.
	ev := intent.Event{
		Action: "com.android.music.metachanged",
		Extras: map[string]*intent.Value{
			"track": {Kind: intent.KindShort, TypeName: intent.TypeShort, Int: 7},
		},
	}
	got := DecodeMusic(ev)
	want := []string{
		"Action: com.android.music.metachanged",
		"  Extra: \"track\"   Type: short   Value: (not parsed, type = short)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestDecodeMusicNoExtras(t *testing.T) {
	got := DecodeMusic(intent.Event{Action: "com.android.music.queuechanged"})
	want := []string{"Action: com.android.music.queuechanged"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}
