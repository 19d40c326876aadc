package domain

// Kind enumerates the managed entity kinds.
type Kind string

const (
	KindDepartment Kind = "department"
	KindService    Kind = "service"
	KindEmployee   Kind = "employee"
)

// Prefix returns the short token used inside temporary draft ids.
func (k Kind) Prefix() string {
	switch k {
	case KindDepartment:
		return "dept"
	case KindService:
		return "svc"
	case KindEmployee:
		return "staff"
	default:
		return string(k)
	}
}
