package repository

import "strings"

// setBuilder accumulates SET fragments for field-presence partial updates so
// absent fields never clobber stored values. Column names are fixed string
// literals at every call site; caller input only ever lands in args.
type setBuilder struct {
	cols []string
	args []any
}

func (b *setBuilder) add(col string, v any) {
	b.cols = append(b.cols, col+" = ?")
	b.args = append(b.args, v)
}

func (b *setBuilder) empty() bool { return len(b.cols) == 0 }

func (b *setBuilder) clause() string { return strings.Join(b.cols, ", ") }
