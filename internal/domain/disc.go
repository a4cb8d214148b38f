package domain

// Disc is a colored token. NoDisc marks an empty cell.
type Disc struct {
	color Color
}

var NoDisc = Disc{color: NoColor}

func NewDisc(c Color) Disc {
	return Disc{color: c}
}

func (d Disc) Color() Color {
	return d.color
}

func (d Disc) IsEmpty() bool {
	return d.color.IsNone()
}

func (d Disc) String() string {
	return d.color.String()
}
