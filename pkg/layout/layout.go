package layout

// Kind tags the closed set of layout descriptors so renderers can dispatch
// without type assertions on unknown values.
type Kind string

const (
	KindGrid Kind = "grid"
	KindFlow Kind = "flow"
)

// Layout is implemented by every layout descriptor.
type Layout interface {
	Kind() Kind
}

type optionalGap struct {
	gap Gap
	set bool
}

func (o optionalGap) get() (Gap, bool) {
	return o.gap, o.set
}
