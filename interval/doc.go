/*Package interval implements closed integer intervals and an interval-union
  ("coverage") type that keeps its members sorted and merged.
  (Note the 'union'.  Overlapping intervals are merged, not tracked
  separately; a Coverage answers how many positions are covered and where the
  holes are, not which input interval covered what.)
  Every position fits in a PosType, which is int64.
*/
package interval
