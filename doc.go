// Package traversal compiles visitor traversal plans for composite Go types.
// A plan is derived once from a type declaration and its traverse tag
// directives (skip, with='fn'), then drives enter/leave visitor hooks over
// live values in declaration order with cooperative early termination.
package traversal
