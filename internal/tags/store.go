package tags

// ReadFunc supplies the current collection in controlled mode.
type ReadFunc func() []Tag

// WriteFunc receives the computed next collection in controlled mode.
type WriteFunc func([]Tag)

// ChangeFunc observes every successful collection replacement. It always
// receives the full next collection, never a diff.
type ChangeFunc func([]Tag)

// store is the single read/write surface over the tag collection. The two
// implementations differ only in who owns the data; callers never branch
// on mode.
type store interface {
	read() []Tag
	write(next []Tag)
}

// localStore owns the collection itself (uncontrolled mode).
type localStore struct {
	tags   []Tag
	notify ChangeFunc
}

func (s *localStore) read() []Tag {
	return s.tags
}

func (s *localStore) write(next []Tag) {
	s.tags = next
	if s.notify != nil {
		s.notify(next)
	}
}

// hostStore delegates ownership to the host (controlled mode). Reads go
// through the host's getter on every call; writes forward the computed
// next collection and retain nothing locally.
type hostStore struct {
	get    ReadFunc
	set    WriteFunc
	notify ChangeFunc
}

func (s *hostStore) read() []Tag {
	if s.get == nil {
		return nil
	}
	return s.get()
}

func (s *hostStore) write(next []Tag) {
	if s.set != nil {
		s.set(next)
	}
	if s.notify != nil {
		s.notify(next)
	}
}
