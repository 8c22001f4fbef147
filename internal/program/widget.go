package program

import (
	"fmt"

	"xbase/internal/token"
)

// Widget is the closed set of base kinds a declared class may extend.
type Widget uint8

const (
	WidgetInvalid Widget = iota
	WidgetForm
	WidgetContainer
	WidgetGrid
	WidgetPushButton
	WidgetMemo
	WidgetText
	WidgetEditField
	widgetCount
)

// String returns the base class name used in the listing.
func (w Widget) String() string {
	switch w {
	case WidgetForm:
		return "Form"
	case WidgetContainer:
		return "Container"
	case WidgetGrid:
		return "Grid"
	case WidgetPushButton:
		return "PushButton"
	case WidgetMemo:
		return "Memo"
	case WidgetText:
		return "Text"
	case WidgetEditField:
		return "EditField"
	case WidgetInvalid, widgetCount:
		return fmt.Sprintf("Widget(%d)", uint8(w))
	}
	return fmt.Sprintf("Widget(%d)", uint8(w))
}

// Valid reports whether w is one of the declared kinds.
func (w Widget) Valid() bool { return w > WidgetInvalid && w < widgetCount }

// Defaults returns the properties every instance of the base kind starts with.
// Declared THIS.<prop> assignments run after them and may override them.
func (w Widget) Defaults() []Prop {
	num := func(name string, v float64) Prop { return Prop{Name: name, Value: Number(v)} }
	str := func(name, v string) Prop { return Prop{Name: name, Value: String(v)} }
	switch w {
	case WidgetForm:
		return []Prop{str("text", ""), num("top", 0), num("left", 0), num("height", 25), num("width", 80)}
	case WidgetContainer:
		return []Prop{num("top", 0), num("left", 0), num("height", 10), num("width", 40)}
	case WidgetGrid:
		return []Prop{num("top", 0), num("left", 0), num("rows", 0), num("columns", 0)}
	case WidgetPushButton:
		return []Prop{str("text", "OK"), num("top", 0), num("left", 0), num("width", 10)}
	case WidgetMemo:
		return []Prop{str("value", ""), num("top", 0), num("left", 0), num("height", 5), num("width", 40)}
	case WidgetText:
		return []Prop{str("text", ""), num("top", 0), num("left", 0)}
	case WidgetEditField:
		return []Prop{str("value", ""), num("top", 0), num("left", 0), num("width", 20)}
	case WidgetInvalid, widgetCount:
		return nil
	}
	return nil
}

// WidgetForKeyword maps the keyword after OF to its widget kind.
func WidgetForKeyword(k token.Kind) (Widget, bool) {
	switch k {
	case token.KwForm:
		return WidgetForm, true
	case token.KwContainer:
		return WidgetContainer, true
	case token.KwGrid:
		return WidgetGrid, true
	case token.KwPushbutton:
		return WidgetPushButton, true
	case token.KwMemo:
		return WidgetMemo, true
	case token.KwText:
		return WidgetText, true
	case token.KwEditfield:
		return WidgetEditField, true
	default:
		return WidgetInvalid, false
	}
}
