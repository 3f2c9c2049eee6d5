package request

// CreateTicketRequest accepts both JSON and urlencoded bodies. Absent fields
// decode to the empty string.
type CreateTicketRequest struct {
	Name    string `json:"name" form:"name"`
	Problem string `json:"problem" form:"problem"`
}
