// Package guards exposes the type guards defined in guards.ts as reified syntax
// trees. The registry lives in generated_guards.go; regenerate it after editing
// guards.ts.
package guards

//go:generate env GUARDGEN_SOURCE=guards.ts GUARDGEN_OUTPUT=generated_guards.go go run guardgen/cmd/guardgen
