// Package observe wraps steps with structured logging. The combinators in
// package step never log on their own; wrap the steps you want to see.
package observe
