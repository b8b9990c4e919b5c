// ==============================================================================================
// FILE: internal/lexer/lexer_benchmark_test.go
// ==============================================================================================
// PURPOSE: Throughput characterization for the scanner, carried over from
//          the teacher's per-package benchmark convention.
// ==============================================================================================

package lexer

import "testing"

func BenchmarkNextToken(b *testing.B) {
	const src = `define fib(n)
  if n <= 1 then return n
  return fib(n - 1) + fib(n - 2)
repeat i from 1 to 10
  show fib(i)
`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := New(src)
		for {
			tok := l.NextToken()
			if tok.Type == "EOF" {
				break
			}
		}
	}
}
