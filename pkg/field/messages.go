package field

// Message keys.
const (
	MsgRequired = "required"
	MsgInvalid  = "invalid"
)

var baseMessages = map[string]string{
	MsgRequired: "This field is required",
}

var kindMessages = map[Kind]map[string]string{
	Integer: {MsgInvalid: "Enter a whole number"},
	Float:   {MsgInvalid: "Enter a number"},
	Decimal: {MsgInvalid: "Enter a Decimal value"},
}

// messagesFor merges base messages, kind defaults and overrides, later wins.
func messagesFor(kind Kind, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(baseMessages)+len(overrides)+1)
	for _, m := range []map[string]string{baseMessages, kindMessages[kind], overrides} {
		for k, v := range m {
			out[k] = v
		}
	}

	return out
}
