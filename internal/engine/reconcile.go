package engine

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/rules"
)

// Reconciliation policy for computed items whose id survives recomputation:
// Name, Rate and Price carry over from the previous item so user overrides
// win; Hours and Quantity are always refreshed because they are
// geometry-derived and the recompute exists to correct them. Flat fee
// amounts refresh from the design field, which is their defining input.
//
// Custom items (custom- id prefix, origin tag) pass through untouched and
// keep their relative order ahead of computed items; computed items follow
// the catalog's canonical ordering regardless of toggle order.

// reconcile merges a previous item list with freshly computed candidates.
// Ids present in both are merged via mergeFn (previous first), new ids are
// inserted, vanished computed ids are dropped, and custom items are always
// preserved. An id that appears in both the custom and computed namespaces
// resolves as custom and is logged, never overwritten.
func reconcile[T any](prev, fresh []T, id func(T) string, isCustom func(T) bool, mergeFn func(old, new T) T) []T {
	custom := make([]T, 0, len(prev))
	customIDs := make(map[string]bool)
	prevComputed := make(map[string]T)

	for _, it := range prev {
		if isCustom(it) {
			if !strings.HasPrefix(id(it), model.CustomIDPrefix) {
				slog.Warn("reconcile: custom item carries a computed-style id, preserving as custom", "id", id(it))
			}
			custom = append(custom, it)
			customIDs[id(it)] = true
			continue
		}
		prevComputed[id(it)] = it
	}

	merged := make([]T, 0, len(fresh))
	for _, f := range fresh {
		if customIDs[id(f)] {
			slog.Warn("reconcile: computed id collides with a custom item, keeping custom", "id", id(f))
			continue
		}
		if old, ok := prevComputed[id(f)]; ok {
			merged = append(merged, mergeFn(old, f))
		} else {
			merged = append(merged, f)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return rules.OrderIndex(id(merged[i])) < rules.OrderIndex(id(merged[j]))
	})

	return append(custom, merged...)
}

// ReconcileLabor merges labor lists. Surviving ids keep the previous Name
// and Rate; Hours refresh.
func ReconcileLabor(prev, fresh []model.LaborItem) []model.LaborItem {
	return reconcile(prev, fresh,
		func(li model.LaborItem) string { return li.ID },
		model.LaborItem.IsCustom,
		func(old, new model.LaborItem) model.LaborItem {
			new.Name = old.Name
			new.Rate = old.Rate
			return new
		})
}

// ReconcileMaterials merges material lists. Surviving ids keep the previous
// Name and Price; Quantity and Unit refresh.
func ReconcileMaterials(prev, fresh []model.MaterialItem) []model.MaterialItem {
	return reconcile(prev, fresh,
		func(mi model.MaterialItem) string { return mi.ID },
		model.MaterialItem.IsCustom,
		func(old, new model.MaterialItem) model.MaterialItem {
			new.Name = old.Name
			new.Price = old.Price
			return new
		})
}

// ReconcileFlatFees merges flat fee lists. The amount refreshes from the
// design field; only the name override is preserved.
func ReconcileFlatFees(prev, fresh []model.FlatFeeItem) []model.FlatFeeItem {
	return reconcile(prev, fresh,
		func(fi model.FlatFeeItem) string { return fi.ID },
		model.FlatFeeItem.IsCustom,
		func(old, new model.FlatFeeItem) model.FlatFeeItem {
			new.Name = old.Name
			return new
		})
}
