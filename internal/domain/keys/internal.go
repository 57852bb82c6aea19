package keys

// Internal keys, set programmatically and never bound to flags or env.
const (
	Execute       string = "execute"
	PositionalIDs string = "positional-ids"
)
