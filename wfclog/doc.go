// Package wfclog is a thin structured-logging facade over zerolog, used
// by search and cmd/wfcdemo to trace a solve's propagate sweeps, choices,
// backtracks, and contradictions. The facade exists so the rest of the
// module depends on a narrow, WFC-shaped logging vocabulary rather than
// on zerolog's general-purpose event builder directly.
//
// Built on github.com/rs/zerolog: a Debug()/Str()/Msg() chain on a
// wrapped logger, which is passed around as a value rather than reached
// for through a package-level singleton.
package wfclog
