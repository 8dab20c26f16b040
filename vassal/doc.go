// Package vassal answers queries over the master/vassal forest of a core.Realm.
//
// What
//
//   - TaxerPath:   the chain of masters above a town, starting at the town.
//   - LongestPath: the deepest descending chain of vassals below a town.
//   - NetTax:      what a town keeps after collecting a tenth of every direct
//     vassal's gross income and, if it has a master, paying a tenth upward.
//
// Every walk is iterative with an explicit stack, so a long vassal chain
// cannot exhaust the goroutine stack. Each query owns a fresh
// traversal.Context; a town seen twice means the forest is corrupt and the
// query stops with ErrTreeCycle instead of looping.
//
// Determinism
//
//	Vassals are explored in the order they were attached. LongestPath keeps
//	the first deepest chain it meets in that order, so among equally long
//	chains the one through the earliest-attached vassal wins.
//
// Rounding
//
//	A tenth is the mathematical floor of x/10, so a negative tax rounds
//	toward minus infinity. Each vassal edge takes its tenth of the child's
//	gross once; tenths are never compounded within a single level.
//
// Complexity (n = towns in the subtree, d = depth of the queried town)
//
//   - TaxerPath:   O(d)
//   - LongestPath: O(n)
//   - NetTax:      O(n)
//
// Errors
//
//   - ErrRealmNil           if the realm pointer is nil.
//   - core.ErrTownNotFound  if the queried town is absent.
//   - ErrTreeCycle          if the master relation is found to loop.
package vassal
