/*
Package errors is the error toolkit shared by every weft extension.

Each failure category is a root error created with Register. Extensions that
need their own categories (for example x/kitties) register them once during
program start, picking a code that is not used anywhere else. The code is
what an ABCI client receives, so it must stay stable.

Create instances at the point of failure with Wrap, Wrapf, or the root
error's New and Newf methods. The innermost wrap records a stack trace:

	%s   prints the message chain
	%+v  prints the message chain followed by the stack trace

Test for a category with Is:

	if errors.ErrNotFound.Is(err) { ... }
*/
package errors
