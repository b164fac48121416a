package docnav

// SessionState is the state of an interactive search session.
type SessionState int

const (
	SessionClosed SessionState = iota
	SessionOpen
)

func (s SessionState) String() string {
	if s == SessionOpen {
		return "open"
	}
	return "closed"
}

// SessionTrigger is an input that drives a Session.
type SessionTrigger int

const (
	TriggerOpen   SessionTrigger = iota // open shortcut
	TriggerEscape                       // escape key
	TriggerUp                           // move selection up
	TriggerDown                         // move selection down
	TriggerCommit                       // choose the highlighted result
	TriggerClose                        // explicit close
)

// NavigateFunc receives the address of a chosen result.
type NavigateFunc func(address string)

// Session is the interactive search loop: it re-runs the query on every
// change, keeps a selection cursor within the results, and resolves a chosen
// result to an address. A Session is not safe for concurrent use.
type Session struct {
	entries  []*SearchEntry
	policy   SearchPolicy
	prefix   string
	navigate NavigateFunc

	state   SessionState
	query   string
	results []*SearchEntry
	cursor  int
}

// NewSession returns a closed session over entries. Chosen results resolve
// to addresses under prefix and are passed to navigate, which may be nil.
func NewSession(entries []*SearchEntry, prefix string, navigate NavigateFunc) *Session {
	return &Session{
		entries:  entries,
		policy:   DefaultSearchPolicy,
		prefix:   prefix,
		navigate: navigate,
	}
}

// SetPolicy replaces the ranking policy used for subsequent queries.
func (s *Session) SetPolicy(p SearchPolicy) {
	s.policy = p
}

// Policy returns the ranking policy in use.
func (s *Session) Policy() SearchPolicy { return s.policy }

// State returns the current state.
func (s *Session) State() SessionState { return s.state }

// Query returns the current query text.
func (s *Session) Query() string { return s.query }

// Results returns the results for the current query.
func (s *Session) Results() []*SearchEntry { return s.results }

// Cursor returns the index of the highlighted result.
func (s *Session) Cursor() int { return s.cursor }

// Selected returns the highlighted result, or nil if there are no results.
func (s *Session) Selected() *SearchEntry {
	if s.cursor < len(s.results) {
		return s.results[s.cursor]
	}
	return nil
}

// Handle applies a trigger. When the trigger chooses a result it returns the
// result's address and true.
func (s *Session) Handle(t SessionTrigger) (string, bool) {
	switch t {
	case TriggerOpen:
		s.state = SessionOpen
	case TriggerEscape, TriggerClose:
		s.close()
	case TriggerUp:
		if s.state == SessionOpen {
			s.moveTo(s.cursor - 1)
		}
	case TriggerDown:
		if s.state == SessionOpen {
			s.moveTo(s.cursor + 1)
		}
	case TriggerCommit:
		if s.state == SessionOpen {
			return s.Select(s.cursor)
		}
	}
	return "", false
}

// SetQuery replaces the query text and recomputes the results. The cursor
// returns to the first result. Ignored while closed.
func (s *Session) SetQuery(q string) {
	if s.state != SessionOpen {
		return
	}
	s.query = q
	s.results = s.policy.Search(s.entries, q)
	s.cursor = 0
}

// Select chooses the result at index i, hands its address to the navigation
// function and closes the session. It returns false if i is out of range or
// the session is closed.
func (s *Session) Select(i int) (string, bool) {
	if s.state != SessionOpen || i < 0 || i >= len(s.results) {
		return "", false
	}

	r := s.results[i]
	addr := Address(s.prefix, r.Slug, r.Anchor)
	if s.navigate != nil {
		s.navigate(addr)
	}
	s.close()
	return addr, true
}

func (s *Session) moveTo(i int) {
	s.cursor = clamp(i, 0, len(s.results)-1)
}

func (s *Session) close() {
	s.state = SessionClosed
	s.query = ""
	s.results = nil
	s.cursor = 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
