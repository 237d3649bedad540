// Package prompt reads validated line-oriented input from the console.
//
// Every method loops until the user supplies an acceptable value, printing an
// explanatory message and re-prompting on each failure; invalid input never
// escapes and never terminates the process. The only error condition is the
// input stream ending, which callers treat as session interruption.
package prompt
