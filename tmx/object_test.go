package tmx

import (
	"errors"
	"strings"
	"testing"
)

func objectDoc(group string) string {
	return `<map width="1" height="1" tilewidth="16" tileheight="16">` + group + `</map>`
}

func TestObjectGroupDecoding(t *testing.T) {
	m := parseDoc(t, objectDoc(`<objectgroup name="spawns" color="#ff0000">
 <object id="4" name="start" type="player_spawn" x="32" y="48" width="16" height="16"/>
 <object name="marker" type="checkpoint" x="96" y="48" rotation="90" gid="7" visible="0"/>
</objectgroup>`))

	og := m.ObjectGroups[0]
	if og.Name != "spawns" || og.Color != "#ff0000" {
		t.Errorf("Group = %q/%q, want spawns/#ff0000", og.Name, og.Color)
	}
	if og.Opacity != 1.0 || !og.Visible {
		t.Errorf("Group opacity/visible = %v/%v, want 1.0/true", og.Opacity, og.Visible)
	}
	if len(og.Objects) != 2 {
		t.Fatalf("Got %d objects, want 2", len(og.Objects))
	}

	first := og.Objects[0]
	if first.ID != 4 || first.Type != "player_spawn" || first.X != 32 || first.Y != 48 {
		t.Errorf("First object = %+v", first)
	}
	if first.Width != 16 || first.Height != 16 || first.Rotation != 0 || !first.Visible {
		t.Errorf("First object defaults = %+v", first)
	}

	second := og.Objects[1]
	if second.Rotation != 90 || second.GID != 7 || second.Visible {
		t.Errorf("Second object = %+v", second)
	}
}

func TestObjectAbsentIDAndGid(t *testing.T) {
	m := parseDoc(t, objectDoc(`<objectgroup name="spawns">
 <object type="player_spawn" x="0" y="0"/>
</objectgroup>`))

	o := m.ObjectGroups[0].Objects[0]
	if o.ID != -1 {
		t.Errorf("ID = %d, want -1 when absent", o.ID)
	}
	if o.GID != -1 {
		t.Errorf("GID = %d, want -1 when absent", o.GID)
	}
	if o.Width != 0 || o.Height != 0 {
		t.Errorf("Size = %dx%d, want 0x0 when absent", o.Width, o.Height)
	}
}

func TestObjectRequiresPosition(t *testing.T) {
	for _, obj := range []string{
		`<object type="player_spawn" y="0"/>`,
		`<object type="player_spawn" x="0"/>`,
	} {
		_, err := Parse(strings.NewReader(objectDoc(`<objectgroup name="spawns">` + obj + `</objectgroup>`)))
		if !errors.Is(err, ErrMissingAttribute) {
			t.Errorf("Parse error for %s = %v, want ErrMissingAttribute", obj, err)
		}
	}
}

func TestObjectGroupVisibleAttribute(t *testing.T) {
	m := parseDoc(t, objectDoc(`<objectgroup name="hidden" visible="0" opacity="0.25"/>`))

	og := m.ObjectGroups[0]
	if og.Visible {
		t.Error(`visible="0" decoded as visible`)
	}
	if og.Opacity != 0.25 {
		t.Errorf("Opacity = %v, want 0.25", og.Opacity)
	}
}
