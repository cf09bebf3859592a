// Package cluster partitions a dataset into named groups before fitting.
//
// Three strategies are supported: grouping by sky state, by ambient temperature band and
// by panel inclination band. Every strategy is an exact partition: each input sample is
// placed in exactly one cluster, and clusters without members are dropped.
//
// Cluster keys and labels are fixed display strings taken from the monitoring dashboard
// the engine feeds ("fria", "Fría (≤10°C)", ...). They do not depend on the data, except
// for sky-state keys which are the sky-state values themselves.
package cluster
