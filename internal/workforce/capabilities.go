package workforce

// Capabilities describes which segregated interfaces a worker kind satisfies.
type Capabilities struct {
	Kind  string `json:"kind"`
	Work  bool   `json:"work"`
	Eat   bool   `json:"eat"`
	Sleep bool   `json:"sleep"`
}

// Describe inspects a value against each capability interface.
func Describe(kind string, v any) Capabilities {
	_, works := v.(Worker)
	_, eats := v.(Eater)
	_, sleeps := v.(Sleeper)
	return Capabilities{Kind: kind, Work: works, Eat: eats, Sleep: sleeps}
}
