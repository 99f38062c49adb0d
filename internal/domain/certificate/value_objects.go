package certificate

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode       = errors.New("invalid certificate code format")
	ErrInvalidCodePrefix = errors.New("certificate code prefix must be two letters")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidStatus     = errors.New("invalid certificate status")
	ErrBlankName         = errors.New("name must not be blank")
)

const (
	CodePrefixLength = 2
	CodeBodyLength   = 8
	CodeLength       = CodePrefixLength + CodeBodyLength
)

var (
	codeRegex   = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{8}$`)
	prefixRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	codeNoise   = strings.NewReplacer(" ", "", "-", "", "\t", "")
)

type Code string

// NewCode normalises what a person typed (case, spaces, dashes) before validating.
func NewCode(raw string) (Code, error) {
	code := strings.ToUpper(codeNoise.Replace(strings.TrimSpace(raw)))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func ValidPrefix(prefix string) bool {
	return prefixRegex.MatchString(prefix)
}

func (c Code) String() string {
	return string(c)
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrBlankName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Status string

const (
	StatusActive          Status = "active"
	StatusPendingDelivery Status = "pending_delivery"
	StatusDelivered       Status = "delivered"
	StatusExpired         Status = "expired"
	StatusUsed            Status = "used"
)

var allStatuses = map[Status]struct{}{
	StatusActive:          {},
	StatusPendingDelivery: {},
	StatusDelivered:       {},
	StatusExpired:         {},
	StatusUsed:            {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := allStatuses[st]; !ok {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

// IsRedeemable reports whether a certificate in this status accepts redemptions.
func (s Status) IsRedeemable() bool {
	return s == StatusActive || s == StatusDelivered
}

func (s Status) IsTerminal() bool {
	return s == StatusExpired || s == StatusUsed
}
