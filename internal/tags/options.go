package tags

// ParseFunc transforms a raw primitive candidate into a structured Tag
// before it enters validation. It must be pure.
type ParseFunc func(raw any) Tag

// Option configures a Controller at construction. Configuration is
// immutable for the controller's lifetime.
type Option func(*settings)

type settings struct {
	initial  []Tag
	get      ReadFunc
	set      WriteFunc
	onChange ChangeFunc

	maxTags         int
	minTags         int
	allowDuplicates bool
	caseSensitive   bool
	disabled        bool
	readOnly        bool
	parse           ParseFunc
	keys            KeyMap
}

// WithDefaultValue seeds the controller-owned collection (uncontrolled
// mode). Ignored when WithValue is also given.
func WithDefaultValue(initial []Tag) Option {
	return func(s *settings) {
		s.initial = append([]Tag(nil), initial...)
	}
}

// WithValue puts the controller in controlled mode: get supplies the
// current collection on every read and set receives every computed next
// collection. The controller retains no copy of its own.
func WithValue(get ReadFunc, set WriteFunc) Option {
	return func(s *settings) {
		s.get = get
		s.set = set
	}
}

// WithChangeHandler registers a callback invoked with the full next
// collection after every successful write.
func WithChangeHandler(fn ChangeFunc) Option {
	return func(s *settings) {
		s.onChange = fn
	}
}

// WithMaxTags sets a hard ceiling on collection length. Zero means no
// ceiling.
func WithMaxTags(n int) Option {
	return func(s *settings) {
		s.maxTags = n
	}
}

// WithMinTags sets the collection floor. Additions are rejected while the
// current length is below the floor; removals are never gated. Zero means
// no floor.
func WithMinTags(n int) Option {
	return func(s *settings) {
		s.minTags = n
	}
}

// WithAllowDuplicates permits candidates whose normalized form matches an
// existing tag or an earlier candidate in the same batch. Off by default.
func WithAllowDuplicates(allow bool) Option {
	return func(s *settings) {
		s.allowDuplicates = allow
	}
}

// WithCaseSensitiveDuplicates disables lower-casing during normalization,
// so "Red" and "red" count as distinct. Off by default.
func WithCaseSensitiveDuplicates(on bool) Option {
	return func(s *settings) {
		s.caseSensitive = on
	}
}

// WithDisabled blocks all add and remove operations.
func WithDisabled(disabled bool) Option {
	return func(s *settings) {
		s.disabled = disabled
	}
}

// WithReadOnly blocks all add and remove operations.
func WithReadOnly(readOnly bool) Option {
	return func(s *settings) {
		s.readOnly = readOnly
	}
}

// WithParseFunc installs the raw-candidate transform applied before
// validation.
func WithParseFunc(fn ParseFunc) Option {
	return func(s *settings) {
		s.parse = fn
	}
}

// WithKeyMap layers key binding overrides on top of DefaultKeyMap.
// Unspecified keys keep their default binding.
func WithKeyMap(overrides KeyMap) Option {
	return func(s *settings) {
		s.keys = s.keys.merged(overrides)
	}
}
