/*
Package main (crepl) is an interactive calculator shell.

C.REPL reads arithmetic expressions line by line, evaluates them with package
calc and prints the result. It is intended as a sandbox for experimenting with
the tokenizer and the combinator grammar during development.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main
