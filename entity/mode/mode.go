package mode

import "fmt"

type Mode uint8

const (
	// Total draws the characteristic strain curve only.
	Total Mode = iota
	// Components adds the instrument and confusion noise curves.
	Components
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "t":
		return Total, nil
	case "c":
		return Components, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Total:
		return "t"
	case Components:
		return "c"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
