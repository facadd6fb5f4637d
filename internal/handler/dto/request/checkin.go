package request

// CheckInRequest carries the scanned payload. The acting staff identity is
// taken from the verified token; staff_id in the body is accepted for wire
// compatibility with older scanner builds but the token wins.
type CheckInRequest struct {
	Code    string `json:"code" binding:"required,max=512"`
	StaffID string `json:"staff_id,omitempty"`
}
