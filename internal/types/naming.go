package types

// NamingOptions are the three display-name flags persisted as NamingCode.
type NamingOptions struct {
	FlatNames    bool
	AddID        bool
	GroupOutputs bool
}

// Code encodes the flags as three 0/1 characters in (flat, id, group) order.
func (o NamingOptions) Code() string {
	return bit(o.FlatNames) + bit(o.AddID) + bit(o.GroupOutputs)
}

// ParseNamingCode decodes a NamingCode attribute. Missing characters read as
// unset.
func ParseNamingCode(code string) NamingOptions {
	at := func(i int) bool {
		return len(code) > i && code[i] == '1'
	}
	return NamingOptions{
		FlatNames:    at(0),
		AddID:        at(1),
		GroupOutputs: at(2),
	}
}

func bit(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
