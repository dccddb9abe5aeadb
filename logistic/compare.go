// SPDX-License-Identifier: MIT

package logistic

import (
	"cmp"

	"github.com/katalvlaran/logistics/logexp"
)

// Comparisons work on the stored logits. The logit is strictly increasing
// in the probability, so these are exact: no probability is ever formed.

// Equal reports whether x and y carry the same logit. NaN is unequal to
// everything, itself included.
func (x Logistic[T]) Equal(y Logistic[T]) bool { return x.logit == y.logit }

// Less reports whether p_x < p_y. It is false if either side is NaN.
func (x Logistic[T]) Less(y Logistic[T]) bool { return x.logit < y.logit }

// Compare returns -1, 0 or +1 following cmp.Compare on the logits:
// NaN sorts before every other value and equals itself.
func Compare[T logexp.Float](x, y Logistic[T]) int {
	return cmp.Compare(x.logit, y.logit)
}
