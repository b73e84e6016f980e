package rules

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Rule is a unit of per-device normalization logic. Apply may mutate the
// context's device in place and may record issues through the context.
type Rule interface {
	Apply(ctx *Context)
}

// RuleFunc adapts a plain function to the Rule interface
type RuleFunc func(ctx *Context)

// Apply implements Rule
func (f RuleFunc) Apply(ctx *Context) { f(ctx) }

// FleetRule is a unit of whole-collection validation logic. Review receives
// every processed device snapshot and may record issues.
type FleetRule interface {
	Review(ctx *FleetContext)
}

// FleetRuleFunc adapts a plain function to the FleetRule interface
type FleetRuleFunc func(ctx *FleetContext)

// Review implements FleetRule
func (f FleetRuleFunc) Review(ctx *FleetContext) { f(ctx) }

// Context is the execution context provided to device rules. It is created
// fresh for every Session.Apply call and bound to the owning session's
// issue sink.
type Context struct {
	Device     map[string]any
	Site       string
	SourcePath string

	session *Session
}

// Hostname returns the device's hostname field when it is a non-empty
// string, otherwise an empty string.
func (c *Context) Hostname() string {
	value, _ := c.Device["hostname"].(string)
	return value
}

// Issuef records a formatted issue against the owning session
func (c *Context) Issuef(format string, args ...any) {
	c.session.recordIssue(fmt.Sprintf(format, args...))
}

// DeviceRecord is an immutable snapshot of one device taken after all
// device rules have run for it. Fleet rules read records; they do not
// mutate them.
type DeviceRecord struct {
	Device      map[string]any
	Site        string
	SourcePath  string
	DisplayPath string
}

// Hostname returns the device's hostname field when it is a non-empty
// string, falling back to the source filename stem.
func (r DeviceRecord) Hostname() string {
	if value, ok := r.Device["hostname"].(string); ok && value != "" {
		return value
	}
	base := filepath.Base(r.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FleetContext is the execution context provided to fleet rules. It wraps
// the ordered sequence of all device records accumulated by a session.
type FleetContext struct {
	records []DeviceRecord
	session *Session
}

// Records returns every accumulated device record in apply order
func (c *FleetContext) Records() []DeviceRecord {
	return c.records
}

// Issuef records a formatted issue against the owning session
func (c *FleetContext) Issuef(format string, args ...any) {
	c.session.recordIssue(fmt.Sprintf(format, args...))
}
