// SPDX-License-Identifier: MIT

// Package typed turns a set of signature-keyed overloads into one callable
// that routes on the runtime types of its arguments.
//
// 🚀 What is typed dispatch?
//
//	A Function carries overloads such as
//
//	  "number, number"             → fast float path
//	  "BigNumber | Fraction, ..."  → exact paths
//	  "Array | Matrix"             → collection path
//
//	and on every Call it inspects value.TypeOf of each argument, selects the
//	best signature and invokes it. When no signature matches exactly, the
//	declared implicit conversions (number → BigNumber, number → Fraction, ...)
//	are tried, chaining them when needed.
//
// ⚙️ Signature grammar:
//
//	signature := "" | param { "," param }
//	param     := [ "..." ] alt { "|" alt }     // "..." only on the last param
//	alt       := "any" | value type name       // boolean, number, BigNumber, ...
//
// ✨ Resolution order:
//
//	Every signature whose arity fits is scored by the tuple
//
//	  (conversion steps, "any" matches, union matches, rest used, declaration index)
//
//	and the lowest tuple wins. Consequently:
//	  • an exact match beats any conversion;
//	  • a concrete parameter beats a union, and a union beats "any";
//	  • a fixed-arity signature beats a rest parameter;
//	  • remaining ties go to the signature declared first.
//
// Failures are reported as *DispatchError naming the received types; the
// Reason (ErrNoMatchingSignature, ErrTooFewArguments, ErrTooManyArguments)
// is matched with errors.Is.
package typed
