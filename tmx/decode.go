package tmx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// element is a generic DOM-ish view of one XML element. The whole document is
// decoded into a tree of these before any model construction happens, so the
// constructors can read attributes with explicit required/default rules
// instead of relying on struct-tag zero values.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// child returns the first child element with the given name, or nil.
func (e *element) child(name string) *element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// attrString reads an optional string attribute, returning def when absent.
func attrString(e *element, name, def string) string {
	if v, ok := e.attr(name); ok {
		return v
	}
	return def
}

// attrInt reads a required integer attribute.
func attrInt(e *element, name string) (int, error) {
	v, ok := e.attr(name)
	if !ok {
		return 0, fmt.Errorf("%w: <%s> %s", ErrMissingAttribute, e.XMLName.Local, name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> %s=%q", ErrMalformedNumber, e.XMLName.Local, name, v)
	}
	return n, nil
}

// attrIntDefault reads an optional integer attribute, returning def when
// absent. A present-but-unparsable value is still an error.
func attrIntDefault(e *element, name string, def int) (int, error) {
	v, ok := e.attr(name)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> %s=%q", ErrMalformedNumber, e.XMLName.Local, name, v)
	}
	return n, nil
}

func attrFloatDefault(e *element, name string, def float64) (float64, error) {
	v, ok := e.attr(name)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> %s=%q", ErrMalformedNumber, e.XMLName.Local, name, v)
	}
	return f, nil
}

// attrVisible implements the TMX visibility rule: absent means visible, and a
// present value is visible unless its integer value is exactly 0. A value
// like "true" is not accepted; the attribute is an integer in this format.
func attrVisible(e *element) (bool, error) {
	v, ok := e.attr("visible")
	if !ok {
		return true, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false, fmt.Errorf("%w: <%s> visible=%q", ErrMalformedNumber, e.XMLName.Local, v)
	}
	return n != 0, nil
}
