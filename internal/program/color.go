package program

import (
	"fmt"
	"strings"
)

// Color is one of the 16 console colours: a base hue 0..7 and an intensity bit.
type Color struct {
	Base   uint8 `msgpack:"b"`
	Bright bool  `msgpack:"h,omitempty"`
}

// Базовые оттенки в порядке ANSI (30 + Base).
const (
	Black uint8 = iota
	Red
	Green
	Brown
	Blue
	Magenta
	Cyan
	White
)

var (
	DefaultFG = Color{Base: White}
	DefaultBG = Color{Base: Black}
)

// colorNames: словесные имена и коды dBase. GRAY и YELLOW сразу яркие.
var colorNames = map[string]Color{
	"N":       {Base: Black},
	"BLACK":   {Base: Black},
	"B":       {Base: Blue},
	"BLUE":    {Base: Blue},
	"G":       {Base: Green},
	"GREEN":   {Base: Green},
	"BG":      {Base: Cyan},
	"GB":      {Base: Cyan},
	"CYAN":    {Base: Cyan},
	"R":       {Base: Red},
	"RED":     {Base: Red},
	"RB":      {Base: Magenta},
	"BR":      {Base: Magenta},
	"MAGENTA": {Base: Magenta},
	"GR":      {Base: Brown},
	"RG":      {Base: Brown},
	"BROWN":   {Base: Brown},
	"W":       {Base: White},
	"WHITE":   {Base: White},
	"GRAY":    {Base: Black, Bright: true},
	"GREY":    {Base: Black, Bright: true},
	"YELLOW":  {Base: Brown, Bright: true},
}

// LookupColor resolves a colour name or code, case-insensitively.
func LookupColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToUpper(name)]
	return c, ok
}

// RGB returns the classic CGA palette value of c.
func (c Color) RGB() (r, g, b uint8) {
	if c.Base == Brown && !c.Bright {
		return 170, 85, 0
	}
	lo, hi := uint8(0), uint8(170)
	if c.Bright {
		lo, hi = 85, 255
	}
	pick := func(bit uint8) uint8 {
		if c.Base&bit != 0 {
			return hi
		}
		return lo
	}
	return pick(1), pick(2), pick(4)
}

// String renders the colour as an rgb(...) call of the listing.
func (c Color) String() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// ColorPair is a foreground/background selection.
type ColorPair struct {
	FG Color `msgpack:"fg"`
	BG Color `msgpack:"bg"`
}

// DefaultColors is W/N, the selection after an empty SET COLOR TO.
func DefaultColors() ColorPair {
	return ColorPair{FG: DefaultFG, BG: DefaultBG}
}
