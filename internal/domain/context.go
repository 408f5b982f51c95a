package domain

// ContextTypePerson is the only context variant the resolver reads back.
const ContextTypePerson = "person"

// PersonContext is the prior-turn payload the client echoes on follow-up
// questions. The client may send back any previous response verbatim; only
// the person-typed shape is consumed server-side.
type PersonContext struct {
	Type   string  `json:"type"`
	Person *Person `json:"person"`
}
