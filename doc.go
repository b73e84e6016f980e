// Package examplenetwork normalizes per-device network configuration data.
//
// # Pipeline
//
// The repository implements a single-process, single-pass pipeline over a
// directory tree of per-device JSON fragments laid out as
// <source>/<site>/<device>.json:
//
//  1. Discovery: the processor walks the source tree and reads each device
//     file (processor package).
//  2. Token resolution: field values of the form <resolver|arg|...> are
//     replaced by querying lookup services - an IPAM for interface
//     addresses and an asset inventory for serial numbers (token and
//     lookup packages). Strings without token syntax pass through as
//     literals.
//  3. Device rules: each device runs through user-supplied and built-in
//     normalization rules that may mutate it in place (rules and
//     rules/builtin packages).
//  4. Fleet validation: once every device has been processed, fleet rules
//     validate the whole collection at once - for example, detecting IPv4
//     addresses allocated to more than one interface anywhere in the
//     fleet.
//  5. Output: on a clean run, normalized JSON is written mirroring the
//     source layout, with sorted keys so generated files diff cleanly.
//
// # Error Philosophy
//
// Token resolution and configuration problems fail fast with a precise,
// single-cause message. Rule violations do not: every device is processed
// and every fleet rule runs before a single aggregate failure lists all
// recorded issues. A misconfigured device never hides its siblings'
// problems.
//
// # Packages
//
//   - config: processor configuration (JSON file, NETGEN_* env, defaults)
//   - errors: classified error handling shared by every package
//   - lookup: IPAM and asset-inventory lookup services
//   - metric: Prometheus metric registration
//   - processor: the per-file normalization pipeline
//   - rules: the two-phase rule engine and session protocol
//   - rules/builtin: stock normalization and fleet validation rules
//   - rulesregistry: wires the stock rules into a rule set
//   - cmd/netgen: the command-line entry point
package examplenetwork
