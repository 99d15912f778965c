package zip

// Container is a numeric container that can take part in a lockstep pass.
// Flat returns the row-major backing elements and whether they are laid out
// contiguously; a non-contiguous container cannot be zipped.
type Container[C any] interface {
	SameShape(other C) bool
	Flat() ([]float64, bool)
}

func shapeErr(operand int) error {
	return &LockstepError{Kind: NotSameShape, Operand: operand}
}

func flat[C Container[C]](c C, n, operand int) ([]float64, error) {
	s, ok := c.Flat()
	if !ok {
		return nil, &LockstepError{Kind: NotSameLayout, Operand: operand}
	}
	if len(s) != n {
		return nil, shapeErr(operand)
	}
	return s, nil
}

func head[C Container[C]](c C) ([]float64, error) {
	s, ok := c.Flat()
	if !ok {
		return nil, &LockstepError{Kind: NotSameLayout, Operand: 0}
	}
	return s, nil
}

// ZipMutWith1 calls f(&out[i], a[i]) for every element.
func ZipMutWith1[C Container[C]](out, a C, f func(o *float64, a float64)) error {
	if !out.SameShape(a) {
		return shapeErr(1)
	}
	o, err := head(out)
	if err != nil {
		return err
	}
	as, err := flat(a, len(o), 1)
	if err != nil {
		return err
	}
	for i := range o {
		f(&o[i], as[i])
	}
	return nil
}

// ZipMutWith2 calls f(&out[i], a[i], b[i]) for every element.
func ZipMutWith2[C Container[C]](out, a, b C, f func(o *float64, a, b float64)) error {
	switch {
	case !out.SameShape(a):
		return shapeErr(1)
	case !out.SameShape(b):
		return shapeErr(2)
	}
	o, err := head(out)
	if err != nil {
		return err
	}
	as, err := flat(a, len(o), 1)
	if err != nil {
		return err
	}
	bs, err := flat(b, len(o), 2)
	if err != nil {
		return err
	}
	for i := range o {
		f(&o[i], as[i], bs[i])
	}
	return nil
}

// ZipMutWith3 calls f(&out[i], a[i], b[i], c[i]) for every element.
func ZipMutWith3[C Container[C]](out, a, b, c C, f func(o *float64, a, b, c float64)) error {
	switch {
	case !out.SameShape(a):
		return shapeErr(1)
	case !out.SameShape(b):
		return shapeErr(2)
	case !out.SameShape(c):
		return shapeErr(3)
	}
	o, err := head(out)
	if err != nil {
		return err
	}
	as, err := flat(a, len(o), 1)
	if err != nil {
		return err
	}
	bs, err := flat(b, len(o), 2)
	if err != nil {
		return err
	}
	cs, err := flat(c, len(o), 3)
	if err != nil {
		return err
	}
	for i := range o {
		f(&o[i], as[i], bs[i], cs[i])
	}
	return nil
}

// ZipMutWith4 calls f(&out[i], a[i], b[i], c[i], d[i]) for every element.
func ZipMutWith4[C Container[C]](out, a, b, c, d C, f func(o *float64, a, b, c, d float64)) error {
	switch {
	case !out.SameShape(a):
		return shapeErr(1)
	case !out.SameShape(b):
		return shapeErr(2)
	case !out.SameShape(c):
		return shapeErr(3)
	case !out.SameShape(d):
		return shapeErr(4)
	}
	o, err := head(out)
	if err != nil {
		return err
	}
	as, err := flat(a, len(o), 1)
	if err != nil {
		return err
	}
	bs, err := flat(b, len(o), 2)
	if err != nil {
		return err
	}
	cs, err := flat(c, len(o), 3)
	if err != nil {
		return err
	}
	ds, err := flat(d, len(o), 4)
	if err != nil {
		return err
	}
	for i := range o {
		f(&o[i], as[i], bs[i], cs[i], ds[i])
	}
	return nil
}

// ZipMutWith5 calls f(&out[i], a[i], b[i], c[i], d[i], e[i]) for every element.
func ZipMutWith5[C Container[C]](out, a, b, c, d, e C, f func(o *float64, a, b, c, d, e float64)) error {
	switch {
	case !out.SameShape(a):
		return shapeErr(1)
	case !out.SameShape(b):
		return shapeErr(2)
	case !out.SameShape(c):
		return shapeErr(3)
	case !out.SameShape(d):
		return shapeErr(4)
	case !out.SameShape(e):
		return shapeErr(5)
	}
	o, err := head(out)
	if err != nil {
		return err
	}
	as, err := flat(a, len(o), 1)
	if err != nil {
		return err
	}
	bs, err := flat(b, len(o), 2)
	if err != nil {
		return err
	}
	cs, err := flat(c, len(o), 3)
	if err != nil {
		return err
	}
	ds, err := flat(d, len(o), 4)
	if err != nil {
		return err
	}
	es, err := flat(e, len(o), 5)
	if err != nil {
		return err
	}
	for i := range o {
		f(&o[i], as[i], bs[i], cs[i], ds[i], es[i])
	}
	return nil
}
