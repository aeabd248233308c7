// Package ticks converts between wall-clock time and scheduler ticks.
//
// A tick is the scheduler's unit of time. Delays are requested in ticks, so
// a millisecond interval is first converted with the configured tick rate:
//
//	rate := ticks.DefaultRate          // 100 Hz
//	n := rate.FromMillis(1000)         // 100 ticks
//	d := rate.Duration(n)              // 1s
//
// The conversion truncates, so an interval shorter than one tick period
// converts to zero ticks.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package ticks
