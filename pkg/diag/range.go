package diag

// Ranger is implemented by parse nodes and errors that cover a part of lls
// source code.
type Ranger interface {
	Range() Ranging
}

// Ranging is a range of byte offsets [From, To) in lls source code. Parse
// nodes embed it to implement [Ranger]; it is not called Range because the
// embedded field would then hide the method.
type Ranging struct {
	From int
	To   int
}

func (r Ranging) Range() Ranging { return r }

// PointRanging returns an empty Ranging at p, used for errors at the end of
// the code.
func PointRanging(p int) Ranging { return Ranging{From: p, To: p} }

// MixedRanging spans from the start of a to the end of b, like a form that
// spans from its head to its last argument.
func MixedRanging(a, b Ranger) Ranging {
	return Ranging{From: a.Range().From, To: b.Range().To}
}
