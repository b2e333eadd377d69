package geom

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the point as the ordered array [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes the ordered array [x, y]. Arrays of any other
// length are an error.
func (p *Point) UnmarshalJSON(data []byte) error {
	var comps []int
	if err := json.Unmarshal(data, &comps); err != nil {
		return err
	}
	if len(comps) != 2 {
		return fmt.Errorf("geom: Point wants 2 components, got %d", len(comps))
	}
	p.X, p.Y = comps[0], comps[1]
	return nil
}

// MarshalJSON encodes the vector as the ordered array [x, y].
func (v Vec2[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]T{v.X, v.Y})
}

// UnmarshalJSON decodes the ordered array [x, y]. Arrays of any other
// length are an error.
func (v *Vec2[T]) UnmarshalJSON(data []byte) error {
	var comps []T
	if err := json.Unmarshal(data, &comps); err != nil {
		return err
	}
	if len(comps) != 2 {
		return fmt.Errorf("geom: Vec2 wants 2 components, got %d", len(comps))
	}
	v.X, v.Y = comps[0], comps[1]
	return nil
}

// MarshalJSON encodes the vector as the ordered array [x, y, z].
func (v Vec3[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]T{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes the ordered array [x, y, z]. Arrays of any
// other length are an error.
func (v *Vec3[T]) UnmarshalJSON(data []byte) error {
	var comps []T
	if err := json.Unmarshal(data, &comps); err != nil {
		return err
	}
	if len(comps) != 3 {
		return fmt.Errorf("geom: Vec3 wants 3 components, got %d", len(comps))
	}
	v.X, v.Y, v.Z = comps[0], comps[1], comps[2]
	return nil
}
