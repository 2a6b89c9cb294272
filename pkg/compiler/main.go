// Package compiler implements a lexer, recursive-descent parser and
// semantic binder, and x86-64 code generator for a substantial subset
// of C, targeting Intel-syntax assembly text for the System V AMD64 ABI.
//
// Pipeline: C source → Lex → Parse (& bind) → Generate → assembly text.
package compiler
