// Package include extracts #include dependencies from C and C++ files.
//
// # Overview
//
// Extraction is deliberately lightweight: a single forward pass drops lines
// that are commented out, then one regular expression collects the names
// inside #include directives. There is no preprocessor, no include-path
// search and no tokenizer.
//
// # Comment Filtering
//
// The filter is a two-state machine (outside / inside a block comment):
//
//   - Inside a block comment, a line is dropped; if it contains the close
//     marker the machine returns to the outside state. Text after the close
//     marker on that same line is dropped too.
//   - Outside, a line whose trimmed text starts with the block open marker
//     enters the block state and is dropped.
//   - A line whose trimmed text starts with the line comment marker is dropped.
//   - A line where the line comment marker appears before the include token is
//     dropped.
//   - Every other line is kept verbatim.
//
// Block comments that open mid-line after code are not recognized. This is a
// known approximation and is kept on purpose.
//
// # Names
//
// Every captured file name is passed through [Normalize], so
//
//	#include "net/socket.hpp"
//
// yields "socket", the same identifier a discovered socket.cpp or socket.hpp
// maps to.
//
// # Usage
//
//	ex := include.NewExtractor(include.DefaultMarkers())
//	names, err := ex.ExtractFile("src/main.cpp")
package include
