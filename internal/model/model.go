// Package model defines the rows exchanged with the store.
//
// Field tags mirror the column names: callers see the store's schema
// as-is, no renaming happens on the way out.
package model
