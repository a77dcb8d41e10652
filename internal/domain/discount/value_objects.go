package discount

import (
	"strings"
)

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixed:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// NormalizeCode trims and upper-cases. Codes are stored in this form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Reason string

const (
	ReasonNone         Reason = ""
	ReasonInvalid      Reason = "invalid"
	ReasonExpired      Reason = "expired"
	ReasonNotYetActive Reason = "not_yet_active"
	ReasonExhausted    Reason = "exhausted"
	ReasonMembersOnly  Reason = "members_only"
	ReasonBelowMinimum Reason = "below_minimum"
)
