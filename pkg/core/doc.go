// Package core provides a small, stable facade over the passcheck scoring
// engine for programs that embed it.
//
// Example:
//
//	r, err := core.Analyze("Tr0ub4dor&3", core.Config{})
//	if err != nil { /* handle */ }
//	_ = core.MarshalReport(os.Stdout, r)
package core
