package zip

// Fold reduces the elements of a in row-major order.
func Fold[C Container[C]](a C, init float64, f func(acc, a float64) float64) (float64, error) {
	as, err := head(a)
	if err != nil {
		return init, err
	}
	for _, v := range as {
		init = f(init, v)
	}
	return init, nil
}

// FoldWith1 reduces a and b in lockstep.
func FoldWith1[C Container[C]](a, b C, init float64, f func(acc, a, b float64) float64) (float64, error) {
	if !a.SameShape(b) {
		return init, shapeErr(1)
	}
	as, err := head(a)
	if err != nil {
		return init, err
	}
	bs, err := flat(b, len(as), 1)
	if err != nil {
		return init, err
	}
	for i := range as {
		init = f(init, as[i], bs[i])
	}
	return init, nil
}

// FoldWith2 reduces a, b and c in lockstep.
func FoldWith2[C Container[C]](a, b, c C, init float64, f func(acc, a, b, c float64) float64) (float64, error) {
	switch {
	case !a.SameShape(b):
		return init, shapeErr(1)
	case !a.SameShape(c):
		return init, shapeErr(2)
	}
	as, err := head(a)
	if err != nil {
		return init, err
	}
	bs, err := flat(b, len(as), 1)
	if err != nil {
		return init, err
	}
	cs, err := flat(c, len(as), 2)
	if err != nil {
		return init, err
	}
	for i := range as {
		init = f(init, as[i], bs[i], cs[i])
	}
	return init, nil
}
