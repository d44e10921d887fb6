// Package domain contains the core entities of the task board system
// and their intrinsic validation rules. Entities carry no persistence
// or transport concerns; stores and handlers depend on this package,
// never the other way around.
package domain
