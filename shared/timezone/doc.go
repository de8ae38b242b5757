// Package timezone holds the location used to render and stamp times.
//
// The location comes from APP_TIMEZONE the first time it is needed and can be
// replaced with Use. Stored timestamps stay in whatever location they were
// created with; only presentation goes through this package.
package timezone
