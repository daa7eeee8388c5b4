package models

// ModelType identifies the datatype an entry belongs to. The type decides
// which concurrency group owns the entry (see RoutingInfo).
type ModelType int

const (
	// Unspecified marks an entity whose datatype could not be determined
	// from its payload. Updates of unspecified type are never applied.
	Unspecified ModelType = iota
	TopLevelFolder
	Bookmarks
	Preferences
	Autofill
	Passwords
	Themes
	TypedURLs
	Extensions
	Sessions
)

var modelTypeNames = map[ModelType]string{
	Unspecified:    "UNSPECIFIED",
	TopLevelFolder: "TOP_LEVEL_FOLDER",
	Bookmarks:      "BOOKMARKS",
	Preferences:    "PREFERENCES",
	Autofill:       "AUTOFILL",
	Passwords:      "PASSWORDS",
	Themes:         "THEMES",
	TypedURLs:      "TYPED_URLS",
	Extensions:     "EXTENSIONS",
	Sessions:       "SESSIONS",
}

func (t ModelType) String() string {
	if name, ok := modelTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ModelTypeSet is an unordered set of model types, used for the
// requested-types filter of one GetUpdates round.
type ModelTypeSet map[ModelType]struct{}

// NewModelTypeSet builds a set from the given types.
func NewModelTypeSet(types ...ModelType) ModelTypeSet {
	set := make(ModelTypeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// Has reports whether t is a member of the set.
func (s ModelTypeSet) Has(t ModelType) bool {
	_, ok := s[t]
	return ok
}

// Add inserts t into the set.
func (s ModelTypeSet) Add(t ModelType) {
	s[t] = struct{}{}
}
