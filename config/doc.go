// Package config loads the settings of the clusterfield command.
//
// Load applies, lowest priority first:
//
//  1. built-in defaults (16×16 grid, 70% occupancy, strict policy, info logs);
//  2. an optional YAML file;
//  3. CLUSTERFIELD_* variables from optional dotenv files;
//  4. CLUSTERFIELD_* variables from the process environment.
//
// The result is validated with struct tags before it is returned. A seed of 0
// means "pick one from the clock"; the chosen seed is logged by the field
// package so the run can be replayed.
package config
