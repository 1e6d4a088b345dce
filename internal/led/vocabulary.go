package led

import (
	"strconv"
	"strings"
)

// LED selects which physical indicator is addressed.
type LED byte

const (
	Button LED = 0x01
	Ring   LED = 0x02
)

// Mode is the blink/fade behaviour code understood by the firmware.
type Mode byte

const (
	Off            Mode = 0x00
	Blink1Hz       Mode = 0x01
	BlinkPoint25Hz Mode = 0x02
	Fade1Hz        Mode = 0x03
	On             Mode = 0x04
	BlinkPoint5Hz  Mode = 0x05
	FadePoint25Hz  Mode = 0x06
	FadePoint5Hz   Mode = 0x07
)

// ButtonColor is the color code of the power button LED.
type ButtonColor byte

const (
	ButtonOff   ButtonColor = 0x00
	ButtonBlue  ButtonColor = 0x01
	ButtonAmber ButtonColor = 0x02
)

// RingColor is the color code of the ring LED.
type RingColor byte

const (
	RingOff    RingColor = 0x00
	RingCyan   RingColor = 0x01
	RingPink   RingColor = 0x02
	RingYellow RingColor = 0x03
	RingBlue   RingColor = 0x04
	RingRed    RingColor = 0x05
	RingGreen  RingColor = 0x06
	RingWhite  RingColor = 0x07
)

type term struct {
	name string
	code byte
}

// vocabulary is an ordered name/code table. Order is the order values are
// listed in help output.
type vocabulary []term

var (
	ledTerms = vocabulary{
		{"button", byte(Button)},
		{"ring", byte(Ring)},
	}

	modeTerms = vocabulary{
		{"Off", byte(Off)},
		{"On", byte(On)},
		{"Blink1Hz", byte(Blink1Hz)},
		{"BlinkPoint5Hz", byte(BlinkPoint5Hz)},
		{"BlinkPoint25Hz", byte(BlinkPoint25Hz)},
		{"Fade1Hz", byte(Fade1Hz)},
		{"FadePoint5Hz", byte(FadePoint5Hz)},
		{"FadePoint25Hz", byte(FadePoint25Hz)},
	}

	buttonColorTerms = vocabulary{
		{"off", byte(ButtonOff)},
		{"blue", byte(ButtonBlue)},
		{"amber", byte(ButtonAmber)},
	}

	ringColorTerms = vocabulary{
		{"off", byte(RingOff)},
		{"cyan", byte(RingCyan)},
		{"pink", byte(RingPink)},
		{"yellow", byte(RingYellow)},
		{"blue", byte(RingBlue)},
		{"red", byte(RingRed)},
		{"green", byte(RingGreen)},
		{"white", byte(RingWhite)},
	}
)

// lookup resolves a token by case-insensitive name, or by decimal code when
// the code is defined in the vocabulary.
func (v vocabulary) lookup(token string) (byte, bool) {
	token = strings.TrimSpace(token)
	for _, t := range v {
		if strings.EqualFold(t.name, token) {
			return t.code, true
		}
	}

	n, err := strconv.ParseUint(token, 10, 8)
	if err != nil {
		return 0, false
	}
	for _, t := range v {
		if t.code == byte(n) {
			return t.code, true
		}
	}
	return 0, false
}

func (v vocabulary) name(code byte) string {
	for _, t := range v {
		if t.code == code {
			return t.name
		}
	}
	return "0x" + strconv.FormatUint(uint64(code), 16)
}

func (v vocabulary) names() []string {
	names := make([]string, len(v))
	for i, t := range v {
		names[i] = t.name
	}
	return names
}

func (l LED) String() string         { return ledTerms.name(byte(l)) }
func (m Mode) String() string        { return modeTerms.name(byte(m)) }
func (c ButtonColor) String() string { return buttonColorTerms.name(byte(c)) }
func (c RingColor) String() string   { return ringColorTerms.name(byte(c)) }

// colorTerms returns the color vocabulary of the given LED.
func colorTerms(l LED) (vocabulary, bool) {
	switch l {
	case Button:
		return buttonColorTerms, true
	case Ring:
		return ringColorTerms, true
	default:
		return nil, false
	}
}

// LEDs returns the LED selector names.
func LEDs() []string { return ledTerms.names() }

// Modes returns the mode names.
func Modes() []string { return modeTerms.names() }

// Colors returns the color names valid for the given LED.
func Colors(l LED) []string {
	terms, ok := colorTerms(l)
	if !ok {
		return []string{}
	}
	return terms.names()
}

// Explain returns the permissible values of a named field for help output.
// Field names are matched case-insensitively.
func Explain(field string) (string, bool) {
	switch strings.ToLower(field) {
	case "led":
		return strings.Join(LEDs(), ", "), true
	case "mode":
		return strings.Join(Modes(), ", "), true
	case "buttoncolor":
		return strings.Join(Colors(Button), ", "), true
	case "ringcolor":
		return strings.Join(Colors(Ring), ", "), true
	case "brightness":
		return "0-" + strconv.Itoa(MaxBrightness), true
	default:
		return "", false
	}
}
