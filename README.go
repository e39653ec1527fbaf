/*
Package mixedproduct generates the Cartesian product of sequences lazily.

Given N finite sequences, a product yields every combination of one element from each sequence exactly once,
without materializing the product set, without random access into the sequences,
and without knowing their lengths up front.

# Summary

A conventional Cartesian product is a nested loop:
the innermost sequence runs fast, the outer ones advance only when the inner one carries over.
That scheme needs to restart inner sequences all the time and, to predict the carry, it has to know where they end.

mixedproduct advances every sequence on every tick instead, like an odometer whose wheels all turn at once.
When the lengths of the sequences are pairwise coprime,
the Chinese Remainder Theorem guarantees that ticking all of them together
visits every combination exactly once within length₀ × length₁ × … ticks.
Lengths are rarely coprime, so each sequence gets a padded period:
the smallest number not below its length that is coprime with the periods fixed before.
Ticks that land on a padding position of any sequence are skipped and never reach the consumer.

A length is discovered when its sequence wraps around for the first time,
so the periods get fixed while the product is already being consumed.

	{0, 1} × {a, b, c, d}
	periods: 2 and 5, the second sequence gets one padding slot
	(0,a) (1,b) (0,c) (1,d) [0,_] (1,a) (0,b) (1,c) (0,d) [1,_]

# Sequences

A Sequence is anything that can hand out a fresh forward Iterator over the same elements repeatedly.
The sequences package has ready-made ones for slices, ranges, strings, files and Go iter.Seq values.

# Ownership

A product borrows its inputs by default.
Wrap an input with Own to hand it over:
when the product is closed, owned sequences that implement io.Closer get closed as well.
Borrowed sequences stay untouched and can be iterated again afterwards.

# Single pass

A product is consumed in a single forward pass.
Once Next reported false, the product is spent and never restarts.
Use Repeatable when the product itself needs to be an input of something that iterates it multiple times.
*/
package mixedproduct
