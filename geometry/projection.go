package geometry

// ProjectOntoNormal returns the component of v lying along the hyperplane's normal
func ProjectOntoNormal(v Vector, h Hyperplane) (Vector, error) {
	return v.Project(h.Normal)
}

// SignedLength returns <v, unit normal>; it is negative when v points away from the normal
func SignedLength(v Vector, h Hyperplane) (float64, error) {
	unit, err := h.UnitNormal()
	if err != nil {
		return 0, err
	}
	return InnerProduct(v, unit), nil
}
