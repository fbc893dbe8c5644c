/*
Package lexmach is a lexmachine adapter.

It offers an alternative to the regex tokenizer of package lexer: all patterns
are compiled into a single DFA, and scanning is maximal-munch instead of
priority-ordered. Emitted tokens are the same paco.Token values, so grammars
built with package comb work with either tokenizer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
