package led

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// MaxBrightness is the upper bound of the brightness percentage.
const MaxBrightness = 100

// State is a complete LED setting as accepted by the SetState method.
type State struct {
	LED        LED
	Brightness uint8
	Mode       Mode
	Color      byte
}

// Bytes returns the control word layout: LED, brightness, mode, color.
func (s State) Bytes() [4]byte {
	return [4]byte{byte(s.LED), s.Brightness, byte(s.Mode), s.Color}
}

// Word returns the control word as the little-endian integer passed to the
// firmware.
func (s State) Word() uint32 {
	b := s.Bytes()
	return binary.LittleEndian.Uint32(b[:])
}

// ColorName returns the color name within the vocabulary of the state's LED.
func (s State) ColorName() string {
	terms, ok := colorTerms(s.LED)
	if !ok {
		return "0x" + strconv.FormatUint(uint64(s.Color), 16)
	}
	return terms.name(s.Color)
}

func (s State) String() string {
	return fmt.Sprintf("%s %s %s %d%%", s.LED, s.ColorName(), s.Mode, s.Brightness)
}

// ParseLED parses an LED selector token.
func ParseLED(token string) (LED, error) {
	code, ok := ledTerms.lookup(token)
	if !ok {
		return 0, newParseError(FieldLED, token, "")
	}
	return LED(code), nil
}

// ParseColor parses a color token against the vocabulary of the given LED.
func ParseColor(l LED, token string) (byte, error) {
	terms, ok := colorTerms(l)
	if !ok {
		return 0, newParseError(FieldColor, token, fmt.Sprintf("no color vocabulary for LED %s", l))
	}

	code, ok := terms.lookup(token)
	if !ok {
		return 0, newParseError(colorField(l), token, "")
	}
	return code, nil
}

// ParseMode parses a mode token.
func ParseMode(token string) (Mode, error) {
	code, ok := modeTerms.lookup(token)
	if !ok {
		return 0, newParseError(FieldMode, token, "")
	}
	return Mode(code), nil
}

// ParseBrightness parses a brightness percentage in [0, MaxBrightness].
func ParseBrightness(token string) (uint8, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 0 {
		return 0, newParseError(FieldBrightness, token,
			fmt.Sprintf("failed to parse brightness value from %q", token))
	}
	if n > MaxBrightness {
		return 0, newParseError(FieldBrightness, token,
			fmt.Sprintf("brightness can't be larger than %d", MaxBrightness))
	}
	return uint8(n), nil
}

// ParseState validates the four positional tokens and builds the state.
// The color token is checked against the vocabulary of the parsed LED.
func ParseState(ledToken, colorToken, modeToken, brightnessToken string) (State, error) {
	l, err := ParseLED(ledToken)
	if err != nil {
		return State{}, err
	}

	color, err := ParseColor(l, colorToken)
	if err != nil {
		return State{}, err
	}

	mode, err := ParseMode(modeToken)
	if err != nil {
		return State{}, err
	}

	brightness, err := ParseBrightness(brightnessToken)
	if err != nil {
		return State{}, err
	}

	return State{
		LED:        l,
		Brightness: brightness,
		Mode:       mode,
		Color:      color,
	}, nil
}

func colorField(l LED) string {
	if l == Ring {
		return FieldRingColor
	}
	return FieldButtonColor
}
