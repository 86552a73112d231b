package aura

// reduceActive folds the effect's reducer over its default and the active
// instances in registration order. Pure: no state is touched.
func reduceActive(eff *Effect, active []*boundInstance) Value {
	acc := eff.Default
	for _, b := range active {
		acc = eff.Reduce.Reduce(acc, b.inst)
	}
	return acc
}
