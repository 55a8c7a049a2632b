package shapeindex

import "errors"

var (
	// ErrNilShape is returned when a query is issued without a reference shape.
	ErrNilShape = errors.New("shapeindex: nil query shape")
	// ErrInvalidDistance is returned for a negative or NaN query distance.
	ErrInvalidDistance = errors.New("shapeindex: invalid query distance")
	// ErrNilVisitor is returned when Query is given no visitor.
	ErrNilVisitor = errors.New("shapeindex: nil visitor")
)
