// Package viewstate models the screens of the NutriSuggest single-page app
// as an explicit finite-state machine. The SPA drives every transition,
// including browser back/forward, through Reduce so the visible screen and
// the navigable history entry never diverge.
package viewstate

type State string

const (
	StateLanding State = "landing"
	StateInput   State = "input"
	StateLoading State = "loading"
	StateResults State = "results"
	StateHistory State = "history"
)

type Event string

const (
	EventGetStarted        Event = "getStarted"
	EventSubmitValid       Event = "submitValid"
	EventSubmitInvalid     Event = "submitInvalid"
	EventResolved          Event = "resolved"
	EventNewRecommendation Event = "newRecommendation"
	EventViewHistory       Event = "viewHistory"
	EventBack              Event = "back"
)

// Effect is a side effect the caller must perform on entry to the new state.
type Effect string

const (
	EffectNone Effect = ""
	// EffectFetchRecommendation: invoke the recommendation client; its
	// resolution maps to EventResolved.
	EffectFetchRecommendation Effect = "fetchRecommendation"
	// EffectLoginRequired: the history screen is gated on a session; show
	// the login prompt instead of navigating.
	EffectLoginRequired Effect = "loginRequired"
)

// Valid reports whether s names a known state.
func (s State) Valid() bool {
	switch s {
	case StateLanding, StateInput, StateLoading, StateResults, StateHistory:
		return true
	}
	return false
}

// Valid reports whether e names a known event.
func (e Event) Valid() bool {
	switch e {
	case EventGetStarted, EventSubmitValid, EventSubmitInvalid, EventResolved,
		EventNewRecommendation, EventViewHistory, EventBack:
		return true
	}
	return false
}

// Reduce is the pure transition function. Unknown combinations leave the
// state unchanged with no effect, so a stale or replayed event can never
// corrupt the screen.
func Reduce(s State, e Event, loggedIn bool) (State, Effect) {
	if e == EventViewHistory {
		if !loggedIn {
			return s, EffectLoginRequired
		}
		return StateHistory, EffectNone
	}

	switch s {
	case StateLanding:
		if e == EventGetStarted {
			return StateInput, EffectNone
		}
	case StateInput:
		switch e {
		case EventSubmitValid:
			return StateLoading, EffectFetchRecommendation
		case EventSubmitInvalid:
			return StateInput, EffectNone
		}
	case StateLoading:
		if e == EventResolved {
			return StateResults, EffectNone
		}
	case StateResults:
		if e == EventNewRecommendation {
			return StateInput, EffectNone
		}
	case StateHistory:
		if e == EventBack {
			return StateLanding, EffectNone
		}
	}
	return s, EffectNone
}

// Path serializes a state to its address-bar path. Loading shares the
// results path: the app navigates there before the client resolves.
func Path(s State) string {
	switch s {
	case StateInput:
		return "/recommendation"
	case StateLoading, StateResults:
		return "/results"
	case StateHistory:
		return "/history"
	default:
		return "/"
	}
}

// FromPath maps an address-bar path back to a state, for replaying
// popstate navigation through the reducer.
func FromPath(path string) (State, bool) {
	switch path {
	case "/":
		return StateLanding, true
	case "/recommendation":
		return StateInput, true
	case "/results":
		return StateResults, true
	case "/history":
		return StateHistory, true
	}
	return StateLanding, false
}
