package paginator

// OffsetQuery contains offset pagination parameters for a request.
type OffsetQuery struct {
	Limit int `json:"limit" form:"limit"` // Number of items to return
	Skip  int `json:"skip" form:"skip"`   // Number of items to skip
}
