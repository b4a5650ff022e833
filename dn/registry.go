package dn

import (
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dirwire/ldapdn/schema"
)

// SchemaConn is the slice of a directory connection the registry needs to
// discover case-insensitive attribute types. Implementations perform the
// actual protocol exchange; this package never touches the network.
type SchemaConn interface {
	// SubschemaSubentryDN returns the DN of the subschema subentry that
	// governs the connected server, typically read from the root DSE.
	SubschemaSubentryDN() (string, error)

	// ReadSubschemaSubentry returns the raw attributes of the subschema
	// subentry at the given DN, keyed by attribute description
	// ("attributeTypes", "matchingRules", ...).
	ReadSubschemaSubentry(dn string) (map[string][]string, error)
}

// CaseRegistry is a set of attribute type names whose values compare
// case-insensitively. Names keep the case they were stored with but are
// looked up case-insensitively. The set only ever grows; population calls
// are additive and duplicates are harmless.
//
// A CaseRegistry is safe for concurrent use.
type CaseRegistry struct {
	mu    sync.RWMutex
	names map[string]string // folded name -> name as stored
	group singleflight.Group
}

// DefaultRegistry is the process-wide registry consulted by CompareDN and
// by any Comparator without an explicit registry. It preserves the
// populate-once-after-connect usage: attribute case sensitivity is a
// directory-wide schema fact, not a per-call parameter.
var DefaultRegistry = NewCaseRegistry()

// NewCaseRegistry returns an empty registry.
func NewCaseRegistry() *CaseRegistry {
	return &CaseRegistry{names: make(map[string]string)}
}

// Add records attribute type names as case-insensitive.
func (r *CaseRegistry) Add(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if name == "" {
			continue
		}
		r.names[fold(name)] = name
	}
}

// Contains reports whether the named attribute type is registered. The
// lookup folds case on both sides.
func (r *CaseRegistry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.names[fold(name)]
	return ok
}

// Len returns the number of registered attribute type names.
func (r *CaseRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Names returns the registered names as stored, sorted.
func (r *CaseRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// PopulateFromSchema locates and reads the server subschema subentry
// through conn, then registers every name (including aliases) of every
// attribute type whose effective equality matching rule starts with
// "caseIgnore".
//
// Connection and schema errors propagate unmodified and leave the
// registry exactly as it was; names are added only after the whole
// subschema has been parsed. Concurrent calls that resolve to the same
// subentry DN are collapsed into a single fetch.
func (r *CaseRegistry) PopulateFromSchema(conn SchemaConn) error {
	subentry, err := conn.SubschemaSubentryDN()
	if err != nil {
		return err
	}
	_, err, _ = r.group.Do(subentry, func() (any, error) {
		raw, err := conn.ReadSubschemaSubentry(subentry)
		if err != nil {
			return nil, err
		}
		sub, err := schema.ParseSubschema(raw)
		if err != nil {
			return nil, err
		}
		r.Add(sub.CaseIgnoreNames()...)
		return nil, nil
	})
	return err
}

// PopulateFromSubschema registers the caseIgnore attribute type names of
// an already parsed subschema, for callers that obtained one out of band
// (for example schema.Defaults).
func (r *CaseRegistry) PopulateFromSubschema(sub *schema.Subschema) {
	r.Add(sub.CaseIgnoreNames()...)
}
