/*
Package lexer implements a priority-ordered regex tokenizer.

A Tokenizer is built from an ordered list of specs, each pairing a token
category with a regular expression. Scanning tries the specs in declaration
order at every input position and the first spec that matches wins. This is
priority matching, not longest-match: clients must list specific patterns
(keywords) before general ones (identifiers).

Sub-package lexmach provides an alternative tokenizer backed by lexmachine,
for cases where maximal-munch DFA scanning is preferable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer
