package domain

// Status is the moderation state of a comment. Transitions are free-form:
// an explicit update may move a comment from any status to any other, and
// only the current value is kept.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus validates an untrusted status key coming from the boundary.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrBadParamInput
	}
}

// Label returns the fixed display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "В ожидании"
	case StatusApproved:
		return "Одобрено"
	case StatusRejected:
		return "Отклонено"
	default:
		return string(s)
	}
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
