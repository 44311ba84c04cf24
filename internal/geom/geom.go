// Package geom implements the 2D polygon math used by region editing and
// export: containment, area, centroid, translation, scaling, radial warp,
// vertex density edits, simplification, splitting, and edge projection.
//
// Coordinates are Minecraft X/Z plane coordinates; there is no vertical
// axis at this layer. Point order defines the boundary; winding direction
// does not matter to any routine here. Degenerate input (too few points,
// non-positive radius or scale) is a defined no-op, never an error.
package geom

import "math"

// Point is a plane coordinate (Minecraft X/Z).
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// PointInPolygon reports whether p lies inside the polygon using the
// even-odd ray casting rule. Polygons with fewer than 3 points contain
// nothing. Points exactly on an edge or vertex follow the tie-break of the
// ray casting formula and are not specially handled.
func PointInPolygon(p Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		pi, pj := polygon[i], polygon[j]
		if (pi.Z > p.Z) != (pj.Z > p.Z) &&
			p.X < (pj.X-pi.X)*(p.Z-pi.Z)/(pj.Z-pi.Z)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PolygonArea returns the area enclosed by points via the shoelace
// formula. The result is orientation-independent; fewer than 3 points
// yield 0.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0.0
	j := len(points) - 1
	for i := range points {
		sum += points[j].X*points[i].Z - points[i].X*points[j].Z
		j = i
	}
	return math.Abs(sum) / 2
}

// PolygonCenter returns the arithmetic mean of points. Empty input yields
// the origin; a single point is returned as-is.
func PolygonCenter(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sz float64
	for _, p := range points {
		sx += p.X
		sz += p.Z
	}
	n := float64(len(points))
	return Point{X: sx / n, Z: sz / n}
}

// TranslatePoints returns a copy of points shifted by (dx, dz).
func TranslatePoints(points []Point, dx, dz float64) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X + dx, Z: p.Z + dz}
	}
	return out
}

// TranslateToCenter shifts points so that their centroid lands on
// (cx, cz).
func TranslateToCenter(points []Point, cx, cz float64) []Point {
	c := PolygonCenter(points)
	return TranslatePoints(points, cx-c.X, cz-c.Z)
}

// ScalePoints scales each point's offset from (cx, cz) by factor.
// A factor <= 0 is a guarded no-op returning the input unchanged.
func ScalePoints(points []Point, cx, cz, factor float64) []Point {
	if factor <= 0 {
		return points
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: cx + (p.X-cx)*factor,
			Z: cz + (p.Z-cz)*factor,
		}
	}
	return out
}

// distEpsilon floors the squared distance in WarpPoints so the radial
// unit vector is defined at the exact warp center.
const distEpsilon = 1e-8

// WarpPoints radially displaces points around (cx, cz). Points within
// radius move along their radial unit vector by strength scaled with a
// linear falloff (full effect at the center, zero at the radius
// boundary); negative strength pulls inward. Points at or beyond radius
// are unchanged, as is everything when radius <= 0 or strength == 0.
func WarpPoints(points []Point, cx, cz, radius, strength float64) []Point {
	if radius <= 0 || strength == 0 {
		return points
	}
	out := make([]Point, len(points))
	for i, p := range points {
		dx := p.X - cx
		dz := p.Z - cz
		d2 := dx*dx + dz*dz
		if d2 < distEpsilon {
			d2 = distEpsilon
		}
		dist := math.Sqrt(d2)
		if dist >= radius {
			out[i] = p
			continue
		}
		push := strength * (1 - dist/radius)
		out[i] = Point{
			X: p.X + dx/dist*push,
			Z: p.Z + dz/dist*push,
		}
	}
	return out
}

// DoubleVertices inserts the midpoint of every consecutive edge,
// including the wrap-around edge, doubling the vertex count. Fewer than 2
// points is a no-op.
func DoubleVertices(points []Point) []Point {
	n := len(points)
	if n < 2 {
		return points
	}
	out := make([]Point, 0, n*2)
	for i, p := range points {
		next := points[(i+1)%n]
		out = append(out, p, Point{
			X: (p.X + next.X) / 2,
			Z: (p.Z + next.Z) / 2,
		})
	}
	return out
}

// HalveVertices keeps every even-indexed vertex. If fewer than 3 remain,
// odd-indexed vertices are backfilled in order until 3 are present.
// Polygons with 3 or fewer points are returned unchanged.
func HalveVertices(points []Point) []Point {
	if len(points) <= 3 {
		return points
	}
	out := make([]Point, 0, (len(points)+1)/2)
	for i := 0; i < len(points); i += 2 {
		out = append(out, points[i])
	}
	for i := 1; i < len(points) && len(out) < 3; i += 2 {
		out = append(out, points[i])
	}
	return out
}

// SimplifyVertices reduces points with Ramer-Douglas-Peucker, treating
// the sequence as an open path bounded by the first and last point (both
// always retained). Points whose perpendicular deviation from the chord
// exceeds tolerance are kept. Negative tolerance is clamped to 0. If the
// input has 3 or fewer points, or the simplified result would drop below
// 3, the original points are returned.
func SimplifyVertices(points []Point, tolerance float64) []Point {
	if len(points) <= 3 {
		return points
	}
	if tolerance < 0 {
		tolerance = 0
	}
	simplified := rdp(points, tolerance)
	if len(simplified) < 3 {
		return points
	}
	return simplified
}

func rdp(points []Point, tolerance float64) []Point {
	first, last := points[0], points[len(points)-1]
	if len(points) < 3 {
		return []Point{first, last}
	}
	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= tolerance {
		return []Point{first, last}
	}
	left := rdp(points[:maxIdx+1], tolerance)
	right := rdp(points[maxIdx:], tolerance)
	return append(left[:len(left)-1], right...)
}

// perpendicularDistance returns the distance from p to the infinite line
// through a and b, falling back to point distance when the chord is
// degenerate.
func perpendicularDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dz := b.Z - a.Z
	length := math.Hypot(dx, dz)
	if length == 0 {
		return math.Hypot(p.X-a.X, p.Z-a.Z)
	}
	return math.Abs(dx*(a.Z-p.Z)-dz*(a.X-p.X)) / length
}

// SplitPolygon partitions points into two halves by the signed side of
// the infinite line through split1 and split2. A vertical split line is
// special-cased to avoid the slope division. If either half would have
// fewer than 3 points the split is rejected and (points, nil) is
// returned.
func SplitPolygon(points []Point, split1, split2 Point) ([]Point, []Point) {
	var first, second []Point
	vertical := split1.X == split2.X
	var slope float64
	if !vertical {
		slope = (split2.Z - split1.Z) / (split2.X - split1.X)
	}
	for _, p := range points {
		var side float64
		if vertical {
			side = p.X - split1.X
		} else {
			side = p.Z - (split1.Z + slope*(p.X-split1.X))
		}
		if side >= 0 {
			first = append(first, p)
		} else {
			second = append(second, p)
		}
	}
	if len(first) < 3 || len(second) < 3 {
		return points, nil
	}
	return first, second
}

// ClosestPointOnEdge projects p onto every edge segment of the polygon
// (wrap-around edge included) and returns the globally closest projected
// point. Zero-length edges fall back to vertex distance. An empty polygon
// returns p itself.
func ClosestPointOnEdge(p Point, polygon []Point) Point {
	n := len(polygon)
	if n == 0 {
		return p
	}
	if n == 1 {
		return polygon[0]
	}
	best := polygon[0]
	bestDist := math.Inf(1)
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%n]
		candidate := projectOntoSegment(p, a, b)
		d := math.Hypot(p.X-candidate.X, p.Z-candidate.Z)
		if d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	return best
}

// projectOntoSegment clamps the parametric projection of p onto segment
// a-b to t in [0, 1].
func projectOntoSegment(p, a, b Point) Point {
	dx := b.X - a.X
	dz := b.Z - a.Z
	len2 := dx*dx + dz*dz
	if len2 == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Z-a.Z)*dz) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{X: a.X + t*dx, Z: a.Z + t*dz}
}
