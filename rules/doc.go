// Package rules implements the two-phase rule engine used during device
// data normalization.
//
// # Execution Model
//
// An Engine holds a validated, immutable RuleSet and acts as a factory for
// Sessions. A Session orchestrates the two-phase protocol over many devices:
//
//  1. Apply phase: for each device, every device Rule runs in registration
//     order against a fresh Context. Rules may mutate the device in place
//     and may record issues. After the rules run, the session snapshots the
//     device into an immutable DeviceRecord.
//  2. Finalize phase: once all devices have been applied, every FleetRule
//     runs in registration order against a FleetContext wrapping the full
//     ordered sequence of DeviceRecords. Fleet rules may record further
//     issues.
//
// Issues are never fail-fast. Collection continues across every device and
// every fleet rule; Finalize returns a single *ViolationError carrying all
// recorded issues in emission order. A misconfigured device or a fleet-wide
// inconsistency does not hide sibling problems.
//
// # Writing Rules
//
// A device rule is any value implementing the single-method Rule interface;
// RuleFunc adapts plain functions:
//
//	set := rules.NewRuleSet().Add(rules.RuleFunc(func(ctx *rules.Context) {
//	    if ctx.Device["vendor"] == "juniper" {
//	        ctx.Device["domain"] = ctx.Site + ".example.com"
//	    }
//	}))
//
// Fleet rules implement FleetRule and receive every DeviceRecord at once:
//
//	set.AddFleet(rules.FleetRuleFunc(func(ctx *rules.FleetContext) {
//	    for _, record := range ctx.Records() {
//	        // cross-device validation, ctx.Issuef(...) to report
//	    }
//	}))
//
// Rules are an optional extension point. An engine over an empty RuleSet is
// valid; its sessions apply and finalize as no-ops.
//
// # Protocol
//
// Apply may be called zero or more times while a Session is open. Finalize
// transitions the session to its terminal state; calling Apply afterwards,
// or Finalize twice, fails with errors.ErrSessionFinalized. Sessions are not
// safe for concurrent use; serialize all calls or give each logical device
// stream its own session.
package rules
