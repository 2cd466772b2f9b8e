package polylla

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Kernel construction. The kernel of a simple CCW polygon is computed
// by walking the boundary from its first reflex vertex and clipping a
// running region against the half-plane of each visited edge. While
// the region is unbounded it is held as an open chain whose head and
// tail are sentinel far points on the two rays leaving the reflex
// apex; the indices F and L track the first and last chain vertices
// still inside the half-plane being clipped. Clockwise input yields
// orientation-reversed behavior and is not claimed correct.

// FirstReflex returns the smallest index i such that the interior
// angle of poly at vertex i exceeds 180 degrees, or len(poly) when the
// polygon is convex. The tolerance band around 180 is deliberately
// loose so that numerically near-straight corners do not count.
func FirstReflex(poly []int32, verts []Vec2) int {
	return firstReflex(poly, verts, NewSettings().ReflexTolerance)
}

func firstReflex(poly []int32, verts []Vec2, rtol float64) int {
	n := len(poly)
	i := 0
	for i != n {
		a := Angle(verts[poly[mod(i-1, n)]], verts[poly[i]], verts[poly[mod(i+1, n)]])
		if a > 180 && !isclose(180, a, rtol) {
			break
		}
		i++
	}
	return i
}

// Builder computes polygon kernels under a fixed set of Settings.
type Builder struct {
	cfg Settings
}

// NewBuilder returns a Builder using the given settings.
func NewBuilder(cfg Settings) *Builder {
	return &Builder{cfg: cfg}
}

// KernelPoly computes the kernel of poly under default settings.
func KernelPoly(poly []int32, verts []Vec2) []Vec2 {
	return NewBuilder(NewSettings()).Kernel(poly, verts)
}

// Kernel returns the kernel of the polygon as an explicit vertex ring,
// or nil when the kernel is empty. poly indexes into verts and is
// expected counter-clockwise. A convex polygon is returned verbatim.
func (b *Builder) Kernel(poly []int32, verts []Vec2) []Vec2 {
	n := len(poly)
	start := firstReflex(poly, verts, b.cfg.ReflexTolerance)
	if start == n { // convex
		out := make([]Vec2, n)
		for i, idx := range poly {
			out[i] = verts[idx]
		}
		return out
	}

	// Seed the open chain with the reflex apex and two far points on
	// the outward extensions of its incident edges.
	apex := verts[poly[start]]
	next := verts[poly[mod(start+1, n)]]
	prev := verts[poly[mod(start-1, n)]]
	vF := apex.Add(apex.Sub(next).Scale(b.cfg.SentinelOffset))
	vL := apex.Add(apex.Sub(prev).Scale(b.cfg.SentinelOffset))
	k := []Vec2{vF, apex, vL}
	fid, lid := 0, 2
	bounded := false
	skip := 1

	for pi := 1; pi < n-1; pi++ {
		v0 := verts[poly[mod(start+pi-1, n)]]
		v1 := verts[poly[mod(start+pi, n)]]
		v2 := verts[poly[mod(start+pi+1, n)]]
		infV1 := Extrapolate(v1, v2, false)
		infV2 := Extrapolate(v1, v2, true)
		ang := Angle(v0, v1, v2)
		if isclose(0, ang, b.cfg.Tolerance) {
			return nil
		}

		if skip > 1 { // inside a collapsed collinear run
			skip--
			continue
		}

		// Collapse the run of near-straight corners that follows, so
		// the clipping edge reflects the direction after the run.
		nextV1 := verts[poly[mod(start+pi+skip, n)]]
		nextAngle := Angle(
			verts[poly[mod(start+pi+skip-1, n)]],
			nextV1,
			verts[poly[mod(start+pi+skip+1, n)]])
		for scalar.EqualWithinAbs(nextAngle-180, 0, b.cfg.CollinearTolerance) {
			v2 = verts[poly[mod(start+pi+skip+1, n)]]
			infV2 = Extrapolate(v1, v2, true)
			skip++
			nextV1 = verts[poly[mod(start+pi+skip, n)]]
			nextAngle = Angle(
				verts[poly[mod(start+pi+skip-1, n)]],
				nextV1,
				verts[poly[mod(start+pi+skip+1, n)]])
			if isclose(nextV1[0], k[0][0], b.cfg.Tolerance) &&
				isclose(nextV1[1], k[0][1], b.cfg.Tolerance) {
				return k
			}
		}

		if ang > 180 { // reflex corner, pivot on F
			var left float64
			if !bounded && fid == 0 {
				left = InfIsLeft(v1, v2, k[mod(fid+1, len(k))], k[mod(fid, len(k))])
			} else {
				left = IsLeft(v1, v2, k[mod(fid, len(k))])
			}
			var knew []Vec2
			if left < 0 { // F outside the half-plane
				// Scan K ccw from F+1 for a crossing edge.
				fct := fid + 1
				var wp Vec2
				wpOK := false
				wt := 0
				for fct != mod(lid+1, len(k)) {
					wt = mod(fct, len(k))
					wt1 := k[mod(wt-1, len(k))]
					wt2 := k[wt]
					p, lt, ok := LineIntersect(v1, v2, wt1, wt2)
					infA := wt == 1 && !bounded
					infB := wt == len(k)-1 && !bounded
					if ok && OnSegment(v1, v2, p, true, false, lt) &&
						OnSegment(wt1, wt2, p, infA, infB, lt) {
						wp, wpOK = p, true
						break
					}
					fct = mod(fct+1, len(k))
				}
				if !wpOK {
					return nil // kernel is empty
				}
				// Scan K cw from F.
				fcs := fid
				var wp2 Vec2
				wp2OK := false
				ws := -1
				limit := 0
				if bounded {
					limit = mod(fid+1, len(k))
				}
				for ws != limit {
					ws = mod(fcs, len(k))
					ws1 := k[mod(ws-1, len(k))]
					ws2 := k[ws]
					p, lt, ok := LineIntersect(v1, v2, ws1, ws2)
					infA := ws == 1 && !bounded
					infB := ws == len(k)-1 && !bounded
					if ok && OnSegment(v1, v2, p, true, false, lt) &&
						OnSegment(ws1, ws2, p, infA, infB, lt) {
						wp2, wp2OK = p, true
						break
					}
					fcs = mod(fcs-1, len(k))
				}
				if wp2OK {
					if bounded && scalar.EqualWithinAbs(wp.Dist(wp2), 0, b.cfg.DuplicateTolerance) &&
						wp2.Dist(k[ws]) < wp.Dist(k[ws]) {
						wp2, wp = wp, wp2
					}
					if bounded && wt < ws {
						knew = append(knew, k[wt:ws]...)
						knew = append(knew, wp2, wp)
					} else {
						s0 := k[mod(ws-1, len(k))]
						s1 := k[ws]
						if wp2.Dist(s1) > s0.Dist(s1) {
							// intersection beyond the far point: push the
							// sentinel further out
							k[mod(ws-1, len(k))] = s0.Sub(s1.Sub(s0))
						}
						t0 := k[mod(wt-1, len(k))]
						t1 := k[wt]
						if wp.Dist(t0) > t0.Dist(t1) {
							k[wt] = s0.Add(t1.Sub(t0))
						}
						knew = append(knew, k[:ws]...)
						knew = append(knew, wp2, wp)
						knew = append(knew, k[wt:]...)
					}
				} else {
					postHead, head := k[1], k[0]
					preTail, tail := k[len(k)-2], k[len(k)-1]
					if !(InfIsLeft(v2, v1, postHead, head) > 0 && InfIsLeft(v1, v2, preTail, tail) < 0) {
						// The chain closes on itself: rescan from the
						// tail and splice cyclically.
						wr := len(k) - 1
						for !wp2OK {
							wr1 := k[mod(wr-1, len(k))]
							wr2 := k[mod(wr, len(k))]
							p, lt, ok := LineIntersect(v1, v2, wr1, wr2)
							infA := mod(wr, len(k)) == 1 && !bounded
							infB := mod(wr, len(k)) == len(k)-1 && !bounded
							if ok && OnSegment(v1, v2, p, true, false, lt) &&
								OnSegment(wr1, wr2, p, infA, infB, lt) {
								wp2, wp2OK = p, true
								break
							}
							wr = mod(wr-1, len(k))
						}
						if wr > wt {
							knew = append(knew, k[wt:wr]...)
						}
						knew = append(knew, wp2, wp)
						bounded = true
					} else {
						// The carrier slips between head and tail: the
						// region stays open, fresh far point at the head.
						infV := Extrapolate(wp, v2, false)
						startV := infV
						if infV1.Dist(v2) > infV.Dist(v2) {
							startV = infV1
						}
						knew = append(knew, startV, wp)
						knew = append(knew, k[wt:]...)
					}
				}
				if !wp2OK {
					fid = 0
				} else {
					fid = indexOf(knew, wp2)
					if fid < 0 {
						return nil
					}
				}
			} else { // F inside, keep K and re-seat F
				knew = k
				fct := fid
				for {
					wtid := mod(fct, len(k))
					if IsLeft(v2, k[wtid], k[mod(wtid+1, len(k))]) < 0 {
						fid = indexOf(knew, k[wtid])
						if fid < 0 {
							return nil
						}
						break
					}
					fct = mod(fct+1, len(k))
				}
			}
			// Re-seat L on the last vertex still inside.
			lcu := lid - 1
			limit := len(k) - 1
			if bounded {
				limit = mod(lid-2, len(k))
			}
			reseated := false
			for lcu != limit {
				wu1 := k[mod(lcu, len(k))]
				wu2 := k[mod(lcu+1, len(k))]
				if IsLeft(v2, wu1, wu2) > 0 {
					lid = indexOf(knew, k[mod(lcu, len(k))])
					if lid < 0 {
						return nil
					}
					reseated = true
					break
				}
				lcu = mod(lcu+1, len(k))
			}
			if !reseated {
				lid = indexOf(knew, k[mod(lid, len(k))])
				if lid < 0 {
					return nil
				}
			}
			k = knew
		} else { // convex corner, pivot on L
			var left float64
			if !bounded && lid == len(k)-1 {
				left = InfIsLeft(v1, v2, k[mod(lid-1, len(k))], k[mod(lid, len(k))])
			} else {
				left = IsLeft(v1, v2, k[mod(lid, len(k))])
			}
			if left < 0 { // L outside the half-plane
				// Scan K cw from L.
				lct := lid
				var wp Vec2
				wpOK := false
				wt := 0
				for lct != fid {
					wt = mod(lct, len(k))
					wt1 := k[mod(wt-1, len(k))]
					wt2 := k[wt]
					p, lt, ok := LineIntersect(v1, v2, wt1, wt2)
					infA := wt == 1 && !bounded
					infB := wt == len(k)-1 && !bounded
					if ok && OnSegment(v1, v2, p, false, true, lt) &&
						OnSegment(wt1, wt2, p, infA, infB, lt) {
						wp, wpOK = p, true
						break
					}
					lct = mod(lct-1, len(k))
				}
				if !wpOK {
					return nil // kernel is empty
				}
				// Scan K ccw from L+1.
				lcs := lid + 1
				var wp2 Vec2
				wp2OK := false
				ws := -1
				limit := len(k)
				if bounded {
					limit = mod(lid-1, len(k))
				}
				for lcs != limit {
					ws = mod(lcs, len(k))
					ws1 := k[mod(ws-1, len(k))]
					ws2 := k[ws]
					p, lt, ok := LineIntersect(v1, v2, ws1, ws2)
					infA := ws == 1 && !bounded
					infB := ws == len(k)-1 && !bounded
					if ok && OnSegment(v1, v2, p, false, true, lt) &&
						OnSegment(ws1, ws2, p, infA, infB, lt) {
						wp2, wp2OK = p, true
						break
					}
					lcs = mod(lcs+1, len(k))
				}
				var knew []Vec2
				if wp2OK {
					if bounded && scalar.EqualWithinAbs(wp.Dist(wp2), 0, b.cfg.DuplicateTolerance) &&
						wp2.Dist(k[wt]) > wp.Dist(k[wt]) {
						wp2, wp = wp, wp2
					}
					if bounded && ws < wt {
						knew = append(knew, k[ws:wt]...)
						knew = append(knew, wp, wp2)
					} else {
						t0 := k[mod(wt-1, len(k))]
						t1 := k[wt]
						if wp.Dist(t1) > t0.Dist(t1) {
							// intersection beyond the far point: push the
							// sentinel further out
							k[mod(wt-1, len(k))] = t0.Sub(t1.Sub(t0))
						}
						s0 := k[mod(ws-1, len(k))]
						s1 := k[ws]
						if wp2.Dist(t0) > s0.Dist(s1) {
							k[ws] = s0.Add(s1.Sub(s0))
						}
						knew = append(knew, k[:wt]...)
						knew = append(knew, wp, wp2)
						knew = append(knew, k[ws:]...)
					}
				} else {
					postHead, head := k[1], k[0]
					preTail, tail := k[len(k)-2], k[len(k)-1]
					if !(InfIsLeft(v1, v2, postHead, head) > 0 && InfIsLeft(v1, v2, preTail, tail) < 0) {
						// The chain closes on itself: rescan from the
						// head and splice cyclically.
						wr := 1
						for !wp2OK {
							wr1 := k[mod(wr-1, len(k))]
							wr2 := k[mod(wr, len(k))]
							p, lt, ok := LineIntersect(v1, v2, wr1, wr2)
							infA := mod(wr, len(k)) == 1 && !bounded
							infB := mod(wr, len(k)) == len(k)-1 && !bounded
							if ok && OnSegment(v1, v2, p, false, true, lt) &&
								OnSegment(wr1, wr2, p, infA, infB, lt) {
								wp2, wp2OK = p, true
								break
							}
							wr = mod(wr+1, len(k))
						}
						if wr < wt {
							knew = append(knew, k[wr:wt]...)
						}
						knew = append(knew, wp, wp2)
						bounded = true
					} else {
						// The carrier slips between head and tail: the
						// region stays open, fresh far point at the tail.
						infV := Extrapolate(v1, wp, true)
						endV := infV
						if v1.Dist(infV2) > v1.Dist(infV) {
							endV = infV2
						}
						knew = append(knew, k[:wt]...)
						knew = append(knew, wp, endV)
					}
				}
				if wp2OK {
					// New F: a collinear hit forces a rescan instead of
					// inheriting the intersection.
					if onSegmentExact(v1, wp, v2) {
						fct := fid
						for {
							wtid := mod(fct, len(k))
							if IsLeft(v2, k[wtid], k[mod(wtid+1, len(k))]) < 0 {
								fid = indexOf(knew, k[wtid])
								if fid < 0 {
									return nil
								}
								break
							}
							fct = mod(fct+1, len(k))
						}
					} else {
						fid = indexOf(knew, wp)
						if fid < 0 {
							return nil
						}
					}
					// New L.
					if onSegmentExact(v1, wp2, v2) {
						lid = indexOf(knew, wp2)
						if lid < 0 {
							return nil
						}
					} else {
						lstart := indexOf(knew, wp2)
						if lstart < 0 {
							return nil
						}
						lcu := lstart
						limit := len(knew) - 1
						if bounded {
							limit = mod(lstart-2, len(k))
						}
						for lcu != limit {
							wu1 := knew[mod(lcu, len(knew))]
							wu2 := knew[mod(lcu+1, len(knew))]
							if IsLeft(v2, wu1, wu2) > 0 {
								lid = indexOf(knew, knew[mod(lcu, len(knew))])
								break
							}
							lcu = mod(lcu+1, len(knew))
						}
					}
				} else {
					if onSegmentExact(v1, wp, v2) {
						fct := fid
						for {
							wtid := mod(fct, len(k))
							if IsLeft(v2, k[wtid], k[mod(wtid+1, len(k))]) < 0 {
								fid = indexOf(knew, k[wtid])
								if fid < 0 {
									return nil
								}
								break
							}
							fct = mod(fct+1, len(k))
						}
					} else {
						fid = indexOf(knew, wp)
						if fid < 0 {
							return nil
						}
					}
					lid = len(knew) - 1
				}
				k = knew
			} else { // L inside, keep K; re-seat F and (when bounded) L
				fct := fid
				for {
					wtid := mod(fct, len(k))
					if IsLeft(v2, k[wtid], k[mod(wtid+1, len(k))]) < 0 {
						fid = indexOf(k, k[wtid])
						if fid < 0 {
							return nil
						}
						break
					}
					fct = mod(fct+1, len(k))
				}
				if bounded {
					lcu := lid - 1
					limit := mod(lid-2, len(k))
					for lcu != limit {
						wuid := mod(lcu, len(k))
						if IsLeft(v2, k[wuid], k[mod(wuid+1, len(k))]) > 0 {
							lid = indexOf(k, k[wuid])
							if lid < 0 {
								return nil
							}
							break
						}
						lcu = mod(lcu+1, len(k))
					}
				}
			}
		}
	}
	return k
}

// mod is the euclidean remainder, always in [0, n).
func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// indexOf returns the index of the first vertex of pts exactly equal
// to p, or -1.
func indexOf(pts []Vec2, p Vec2) int {
	for i, q := range pts {
		if q == p {
			return i
		}
	}
	return -1
}
