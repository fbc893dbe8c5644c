/*
Package comb implements the parser-combinator core.

A Parser wraps a function from (token sequence, state) to either a success
(value, new state) or a failure (message, state). Failures are a first-class
result channel, not Go errors: choice inspects the first branch's outcome and
falls through to the second on failure, which keeps backtracking cheap and
distinguishes expected grammar misses from programming defects.

Parsing state carries two positions: the current cursor and the rightmost
position reached across all attempted branches. The latter never regresses,
even across backtracking, and is what makes "best error so far" well-defined
when a parse finally fails.

Grammars are built once, from small parsers composed via Then, Or, Map, Bind,
Many and friends, and may afterwards be run concurrently over independent
token sequences. Cyclic grammar rules are expressed with NewForwardDecl and a
one-time Define, or with Lazy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package comb
