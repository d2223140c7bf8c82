package domain

// Screen identifies one of the fixed set of UI screens.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenOrder
	ScreenCart
	ScreenPayment
	ScreenQueue
	ScreenHistory
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenOrder:
		return "order"
	case ScreenCart:
		return "cart"
	case ScreenPayment:
		return "payment"
	case ScreenQueue:
		return "queue"
	case ScreenHistory:
		return "history"
	}
	return "home"
}

// ParseScreen maps a screen name to its Screen; unrecognized names fall back
// to the home screen.
func ParseScreen(name string) Screen {
	switch name {
	case "order":
		return ScreenOrder
	case "cart":
		return ScreenCart
	case "payment":
		return ScreenPayment
	case "queue":
		return ScreenQueue
	case "history":
		return ScreenHistory
	default:
		return ScreenHome
	}
}
