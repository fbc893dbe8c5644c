/*
Package paco is a parser-combinator toolbox.

PaCo strives to be a smart and lightweight tool for building tokenizers and
recursive grammars from small composable parts. It focusses on
combinator-style parsing over materialized token sequences.
Package structure is as follows:

■ lexer: Package lexer implements a priority-ordered regex tokenizer, together
with a lexmachine-backed alternative in sub-package lexmach.

■ comb: Package comb implements the parser-combinator core: sequencing, choice,
repetition, monadic bind, and forward declarations for cyclic grammar rules.

■ calc: Package calc wires lexer and comb into a small arithmetic-expression
interpreter, intended as a usage blueprint.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package paco
