// Package planner turns a selection of class records into every possible
// weekly schedule and flags the ones with meeting collisions.
//
// Generation is the full Cartesian product of one-class-per-subject choices,
// so the combination count is the product of per-subject section counts and
// grows multiplicatively with each added subject. There is no pruning and no
// early termination; callers that let users select many multi-section
// subjects should set a combination ceiling through Options.
package planner
