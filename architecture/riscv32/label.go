package riscv32

// Label identifies a target displacement for a branch or jump. A Label is
// one of two variants: a symbolic name, resolved against the environment's
// label table at replay time, or a fixed numeric displacement known at
// construction time (the zero-value Label resolves to displacement 0).
type Label struct {
	name string
	off  int32
}

// Lbl builds a symbolic label reference. It may be passed to a branch or
// jump mnemonic before or after the matching declare call (L on the
// assembler) that defines it.
func Lbl(name string) Label { return Label{name: name} }

// LblOffset builds a label carrying a fixed, already-known displacement,
// bypassing the label table entirely.
func LblOffset(offset int32) Label { return Label{off: offset} }

// resolve returns the signed byte displacement this label represents,
// relative to the environment's current offset. For a named label during
// staging this always returns 0 (forward references are not yet known);
// during replay it returns labels[name] - currentOffset and panics if the
// name was never declared.
func (l Label) resolve(e *environment) int32 {
	if l.name == "" {
		return l.off
	}
	return e.resolveLabel(l.name)
}
