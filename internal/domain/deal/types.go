package deal

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished:
		return true
	default:
		return false
	}
}
