// Package dailyclaim implements the daily banner claim slot: one shared
// banner text per calendar day, claimed by the first valid writer and reset
// lazily at day rollover.
//
// The module keeps arbitration logic decoupled from runtime/platform concerns
// through ports and adapter composition.
package dailyclaim
