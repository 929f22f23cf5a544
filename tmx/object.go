package tmx

// Object is a freely positioned entity placed in the editor: a spawn point,
// a trigger, a marker. Position is in pixels with a top-left origin. ID and
// GID are -1 when the attribute is absent.
type Object struct {
	ID       int
	Name     string
	Type     string
	X        int
	Y        int
	Width    int
	Height   int
	Rotation int
	GID      int
	Visible  bool
}

// ObjectGroup is a named collection of objects for gameplay logic to consume.
type ObjectGroup struct {
	Name    string
	Color   string
	Opacity float64
	Visible bool
	Objects []*Object
}

func newObjectGroup(el *element) (*ObjectGroup, error) {
	og := &ObjectGroup{
		Name:  attrString(el, "name", ""),
		Color: attrString(el, "color", ""),
	}

	var err error
	if og.Opacity, err = attrFloatDefault(el, "opacity", 1.0); err != nil {
		return nil, err
	}
	if og.Visible, err = attrVisible(el); err != nil {
		return nil, err
	}

	for i := range el.Children {
		child := &el.Children[i]
		if child.XMLName.Local != "object" {
			continue
		}
		o, err := newObject(child)
		if err != nil {
			return nil, err
		}
		og.Objects = append(og.Objects, o)
	}

	return og, nil
}

func newObject(el *element) (*Object, error) {
	o := &Object{
		Name: attrString(el, "name", ""),
		Type: attrString(el, "type", ""),
	}

	var err error
	if o.ID, err = attrIntDefault(el, "id", -1); err != nil {
		return nil, err
	}
	if o.X, err = attrInt(el, "x"); err != nil {
		return nil, err
	}
	if o.Y, err = attrInt(el, "y"); err != nil {
		return nil, err
	}
	if o.Width, err = attrIntDefault(el, "width", 0); err != nil {
		return nil, err
	}
	if o.Height, err = attrIntDefault(el, "height", 0); err != nil {
		return nil, err
	}
	if o.Rotation, err = attrIntDefault(el, "rotation", 0); err != nil {
		return nil, err
	}
	if o.GID, err = attrIntDefault(el, "gid", -1); err != nil {
		return nil, err
	}
	if o.Visible, err = attrVisible(el); err != nil {
		return nil, err
	}

	return o, nil
}
