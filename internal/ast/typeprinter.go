package ast

// TypePrinter converts a type node into its textual spelling for the target
// output language.
type TypePrinter func(Type) string

// typePrinter is the process-wide fallback formatter. The most recently
// subscribed printer wins; generation is strictly sequential, so there is no
// synchronization around it. Only one live generator may hold the hook at a
// time, and its subscribe/unsubscribe calls must stay balanced.
var typePrinter TypePrinter

// SetTypePrinter subscribes the fallback type formatter used while a
// generator is live.
func SetTypePrinter(p TypePrinter) {
	typePrinter = p
}

// ResetTypePrinter removes the subscribed formatter, restoring the default
// C spelling.
func ResetTypePrinter() {
	typePrinter = nil
}

// PrintType spells a type using the subscribed formatter, falling back to the
// plain C spelling when no formatter is live.
func PrintType(t Type) string {
	if typePrinter != nil {
		return typePrinter(t)
	}
	return cSpelling(t)
}

// cSpelling is the neutral spelling used when no backend formatter is
// subscribed, mostly useful in diagnostics and tests.
func cSpelling(t Type) string {
	switch tt := t.(type) {
	case BuiltinType:
		return tt.Name
	case PointerType:
		return cSpelling(tt.Pointee) + "*"
	case TagType:
		return tt.Name
	default:
		return "void"
	}
}
