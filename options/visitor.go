package options

// Visitor recovers the concrete type of an erased Option. Accept calls
// exactly one of these methods, so a visitor regains the full typed
// declaration without any casting on the caller's side.
type Visitor interface {
	VisitUint32(o *TypedOption[uint32])
	VisitUint64(o *TypedOption[uint64])
	VisitInt32(o *TypedOption[int32])
	VisitInt64(o *TypedOption[int64])
	VisitFloat64(o *TypedOption[float64])
	VisitBool(o *TypedOption[bool])
	VisitString(o *TypedOption[string])
	VisitStringSlice(o *TypedOption[[]string])
}

// NopVisitor implements Visitor with empty methods. Embed it to write
// visitors that only care about a subset of value types.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

func (NopVisitor) VisitUint32(*TypedOption[uint32])        {}
func (NopVisitor) VisitUint64(*TypedOption[uint64])        {}
func (NopVisitor) VisitInt32(*TypedOption[int32])          {}
func (NopVisitor) VisitInt64(*TypedOption[int64])          {}
func (NopVisitor) VisitFloat64(*TypedOption[float64])      {}
func (NopVisitor) VisitBool(*TypedOption[bool])            {}
func (NopVisitor) VisitString(*TypedOption[string])        {}
func (NopVisitor) VisitStringSlice(*TypedOption[[]string]) {}
