// Package cycle finds the recurrence period of a moon system.
//
// Two facts make the search cheap:
//
// The axes are independent. Gravity on an axis reads only positions on that
// axis and drift adds each velocity component to its own position, so the
// projection of the system onto x evolves without any knowledge of y or z.
// Each axis therefore has its own period, and the whole system recurs first
// at the least common multiple of the three.
//
// Only the initial state has to be remembered. The tick is invertible:
// given the state after a tick, positions minus velocities recover the old
// positions, and the old velocities follow from undoing gravity on them.
// So every state has exactly one predecessor. If the first repeated state
// were some s_k with k > 0, then s_(k-1) and the state before the repeat
// would be two different predecessors of s_k. The first repeat must
// therefore be a return to s_0, and a [Detector] compares each tick
// against one stored snapshot instead of a growing history.
//
// [NaivePeriod] keeps the full history and exists to check that argument on
// small systems.
package cycle
