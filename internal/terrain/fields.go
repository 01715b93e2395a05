package terrain

// spread runs a layered breadth-first expansion over orthogonal neighbours
// inside the landmass, starting from sources at distance 0. visit is called
// once per reached point with its distance. It returns the largest distance
// reached.
func (lm *Landmass) spread(sources []int, visit func(i, d int)) int {
	seen := make([]bool, len(lm.points))
	layer := make([]int, 0, len(sources))
	for _, s := range sources {
		if seen[s] {
			continue
		}
		seen[s] = true
		layer = append(layer, s)
		visit(s, 0)
	}

	d := 0
	for len(layer) > 0 {
		var next []int
		for _, i := range layer {
			for _, c := range lm.points[i].At.Adjacent() {
				j, ok := lm.index.Find(c)
				if !ok || seen[j] {
					continue
				}
				seen[j] = true
				next = append(next, j)
			}
		}
		if len(next) == 0 {
			break
		}
		d++
		for _, j := range next {
			visit(j, d)
		}
		layer = next
	}
	return d
}

// DistanceToWater writes each point's distance to the nearest coastal point
// and records the largest one. Coastal points must already be computed.
func (lm *Landmass) DistanceToWater() error {
	if !lm.hasCoastal {
		return ErrNoCoastalPoints
	}
	for i := range lm.points {
		lm.points[i].DistanceToWater = None
	}
	lm.HighestDistanceToWater = lm.spread(lm.coastal, func(i, d int) {
		lm.points[i].DistanceToWater = d
	})
	return nil
}

// DistanceToMountains writes each point's distance to the nearest regular
// mountain point over all ranges. Points stay at None when the landmass has
// no mountain range.
func (lm *Landmass) DistanceToMountains() {
	for i := range lm.points {
		lm.points[i].DistanceToMountain = None
	}
	for _, mr := range lm.Mountains {
		lm.spread(mr.Regular, func(i, d int) {
			p := &lm.points[i]
			if p.DistanceToMountain == None || d < p.DistanceToMountain {
				p.DistanceToMountain = d
			}
		})
	}
}

// CalculateElevation sets each point's elevation to its distance to water.
func (lm *Landmass) CalculateElevation() {
	for i := range lm.points {
		lm.points[i].Elevation = float64(lm.points[i].DistanceToWater)
	}
}
