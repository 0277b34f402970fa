package ir

import "strconv"

func IsObject(y *Node) bool {
	return y != nil && y.Type == ObjectType
}

func IsArray(y *Node) bool {
	return y != nil && y.Type == ArrayType
}

// IsScalar reports whether y is neither an object nor an array.
func IsScalar(y *Node) bool {
	return y != nil && y.Type.IsLeaf()
}

func IsNull(y *Node) bool {
	return y == nil || y.Type == NullType
}

// IsZero reports whether y is the number 0. Other falsy values such as
// "", false or null are not zero.
func IsZero(y *Node) bool {
	if y == nil || y.Type != NumberType {
		return false
	}
	if y.Int64 != nil {
		return *y.Int64 == 0
	}
	if y.Float64 != nil {
		return *y.Float64 == 0
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	return err == nil && f == 0
}
