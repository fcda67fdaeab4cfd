/*
Package bign implements immutable fixed-point decimal numbers backed by
arbitrary-precision integers.
It is designed as a drop-in replacement for floating-point-backed big-decimal
libraries in contexts where exact, reproducible decimal arithmetic is
required, such as token amounts and other financial quantities.

# Representation

[Number] is a struct with three parameters:

  - Value: an arbitrary-precision integer equal to the numeric value
    multiplied by 10^Precision. It is the single source of truth.
  - Precision: a non-negative integer indicating the number of fractional
    digits used for all internal arithmetic. It is fixed at construction.
  - Decimals: a non-negative integer indicating the number of fractional
    digits of the value's original external representation. It is used for
    re-expansion to a decimal string, not for arithmetic correctness.

The numerical value of a number is calculated as Value / 10^Precision.
Precision is never smaller than Decimals: a constructor asked for a smaller
precision than the supplied decimals silently raises the precision, so the
input never loses digits.

Special values such as NaN, Infinity, or signed zeros are not supported.

# Operations

Every arithmetic operation is carried out in two steps:

 1. Rebasing. Both operands are brought to their common precision, the
    maximum of the two, by multiplying the lower-precision operand's value by
    the matching power of ten. Padding with zero fractional digits is
    lossless. Rebasing is a pure function: it returns a fresh scaled integer
    and never mutates an operand.

 2. Combining at the common scaling factor. Addition and subtraction operate
    on the scaled integers directly. Multiplication divides one factor back
    out of the product, and division multiplies one factor back into the
    dividend, since each operand's value carries exactly one factor.

The result is a new number at the common precision; its decimals are
inherited from the receiver.

[Number.Sqrt] runs an integer Newton-Raphson iteration on Value * 10^Precision,
so the root keeps the full working precision.

# Rounding

Rounding is applied only when a value expressed at Precision fractional
digits is narrowed to fewer digits, by [Number.Int], [Number.Decimal], or
[Number.Text]. Comparisons never round; they compare exact scaled values.

The rounding policy lives in a [Context] together with the default
construction precision and an optional custom rounding function. The
package-level operations read the process-wide context, which can be replaced
with [SetDefaultContext] and restored with [ResetDefaultContext]; changing it
affects subsequent narrowing operations, never results already computed.
Callers that need isolation from the process-wide setting invoke the same
operations as [Context] methods.

# Concurrency

Numbers are immutable and safe for concurrent reads, including the use of a
shared number as an operand in simultaneous operations. A [Context] value is
safe for concurrent use but must not be modified concurrently.

# Errors

Constructors return an error for negative decimals, [Number.Quo] for a zero
divisor, and [Number.Sqrt] for a negative operand. All other operations are
total given well-formed operands. Each fallible operation has a panicking
Must variant for safe initialization of globals.
*/
package bign
