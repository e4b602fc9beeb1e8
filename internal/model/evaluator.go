package model

// Evaluator identifies who is acting on an evaluation. It is built per request
// and passed explicitly to the usecases.
type Evaluator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (e Evaluator) IsAdmin() bool {
	return e.Role == RoleAdmin
}
