package model

// Ticket is a single reported problem. ID is assigned by the store on insert
// and serialized under the store's own field name.
type Ticket struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Problem string `json:"problem"`
}

func (t *Ticket) SetID(id string) {
	t.ID = id
}

func (t *Ticket) SetName(name string) {
	t.Name = name
}

func (t *Ticket) SetProblem(problem string) {
	t.Problem = problem
}

func NewTicket() *Ticket {
	return &Ticket{}
}
