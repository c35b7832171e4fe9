package vmath

import (
	"math"
	"testing"
)

func TestIntersectGround(t *testing.T) {
	cases := []struct {
		name string
		ray  Ray
		want Vec3
		hit  bool
	}{
		{"straight_down", Ray{Origin: Vec3{2, 10, -3}, Direction: Vec3{0, -1, 0}}, Vec3{2, 0, -3}, true},
		{"oblique", Ray{Origin: Vec3{5, 5, 10}, Direction: Vec3{-5, -5, -10}}, Vec3{}, true},
		{"parallel", Ray{Origin: Vec3{0, 1, 0}, Direction: Vec3{1, 0, 0}}, Vec3{}, false},
		{"away", Ray{Origin: Vec3{0, 1, 0}, Direction: Vec3{0, 1, 0}}, Vec3{}, false},
		{"from_below", Ray{Origin: Vec3{0, -1, 0}, Direction: Vec3{1, 1, 0}}, Vec3{1, 0, 0}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, hit := c.ray.IntersectGround()
			if hit != c.hit {
				t.Fatalf("hit = %v, want %v", hit, c.hit)
			}
			if hit && got.Distance(c.want) > 1e-9 {
				t.Fatalf("point = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if (Vec3{}).Normalize() != (Vec3{}) || (Vec2{}).Normalize() != (Vec2{}) {
		t.Fatalf("zero vector must stay zero")
	}
	if l := (Vec3{3, 4, 12}).Normalize().Length(); math.Abs(l-1) > 1e-12 {
		t.Fatalf("length %v", l)
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		v    Vec3
		want float64
	}{
		{Vec3{Z: 1}, 0},
		{Vec3{X: 1}, math.Pi / 2},
		{Vec3{X: -1}, -math.Pi / 2},
		{Vec3{Z: -1}, math.Pi},
		{Vec3{X: 1, Y: 7, Z: 1}, math.Pi / 4},
	}
	for _, c := range cases {
		if got := c.v.Heading(); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("Heading(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}
