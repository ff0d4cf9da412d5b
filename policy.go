package godto

// UnknownPolicy controls how a mapping node treats input keys no marker
// declares. A mapping without an explicit policy inherits the policy active
// at its parent; the outermost default is UnknownPrevent.
type UnknownPolicy int

const (
	// UnknownPrevent rejects every undeclared key with an unknown_key issue.
	UnknownPrevent UnknownPolicy = iota
	// UnknownAllow copies undeclared keys into the result verbatim.
	UnknownAllow
	// UnknownRemove drops undeclared keys silently.
	UnknownRemove
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownAllow:
		return "allow"
	case UnknownRemove:
		return "remove"
	default:
		return "prevent"
	}
}
