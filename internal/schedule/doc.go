// Package schedule defines the data model shared by the listing parser and the
// combination planner.
//
// A Class is one scheduled meeting pattern for one section of one subject, as
// extracted from a pasted course listing. Classes are immutable once produced
// by the parser. A Combination is one full assignment of exactly one Class per
// subject; its conflict flag is computed once at creation and never revisited.
//
// Times are carried in the 12-hour display form the source listings use
// (for example "8:30AM") together with a minutes-since-midnight projection
// that gives them a total order for overlap checks.
package schedule
