package schema

// AttributeUsage says how an attribute type is used in the directory.
type AttributeUsage int

const (
	// UserApplications is an ordinary user attribute. The default.
	UserApplications AttributeUsage = iota
	// DirectoryOperation is an operational attribute of the directory.
	DirectoryOperation
	// DistributedOperation is an operational attribute shared across
	// servers.
	DistributedOperation
	// DSAOperation is an operational attribute local to one server.
	DSAOperation
)

// String returns the RFC 4512 keyword for the usage.
func (u AttributeUsage) String() string {
	switch u {
	case UserApplications:
		return "userApplications"
	case DirectoryOperation:
		return "directoryOperation"
	case DistributedOperation:
		return "distributedOperation"
	case DSAOperation:
		return "dSAOperation"
	default:
		return "unknown"
	}
}

// AttributeType is an attribute type definition from a subschema subentry.
type AttributeType struct {
	OID         string         // numeric object identifier, e.g. "2.5.4.3"
	Name        string         // primary name, e.g. "cn"
	Names       []string       // all names including aliases, e.g. ["cn", "commonName"]
	Desc        string         // human-readable description
	Obsolete    bool
	Superior    string         // SUP: name or OID of the parent attribute type
	Equality    string         // equality matching rule name or OID
	Ordering    string         // ordering matching rule name or OID
	Substring   string         // substring matching rule name or OID
	Syntax      string         // syntax OID, length bound stripped
	SingleValue bool
	Collective  bool
	NoUserMod   bool           // NO-USER-MODIFICATION
	Usage       AttributeUsage
}

// MatchingRule is a matching rule definition from a subschema subentry.
type MatchingRule struct {
	OID      string
	Name     string
	Names    []string
	Desc     string
	Obsolete bool
	Syntax   string
}
