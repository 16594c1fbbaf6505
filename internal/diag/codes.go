package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value, kept for uninitialized diagnostics.
	UnknownCode Code = 0

	// Lexical errors.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004

	// Syntax errors.
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectSemicolon    Code = 2004
	SynExpectBody         Code = 2005
	SynUnexpectedTopLevel Code = 2006
	SynMalformedAttribute Code = 2007

	// Rewrite errors: the marker scanner and the invocation argument.
	RewriteInfo             Code = 4000
	RewriteUnknownMarkerArg Code = 4001
	RewriteDuplicateMarker  Code = 4002
	RewriteInvalidModeArg   Code = 4003
	RewriteMalformedMarker  Code = 4004

	// I/O errors surfaced as diagnostics during directory runs.
	IOLoadFileError  Code = 9001
	IOWriteFileError Code = 9002
)

var codeNames = map[Code]string{
	UnknownCode:                 "UNKNOWN",
	LexInfo:                     "LEX-INFO",
	LexUnknownChar:              "LEX-UNKNOWN-CHAR",
	LexUnterminatedString:       "LEX-UNTERMINATED-STRING",
	LexUnterminatedBlockComment: "LEX-UNTERMINATED-BLOCK-COMMENT",
	LexUnterminatedChar:         "LEX-UNTERMINATED-CHAR",
	SynInfo:                     "SYN-INFO",
	SynUnexpectedToken:          "SYN-UNEXPECTED-TOKEN",
	SynUnclosedDelimiter:        "SYN-UNCLOSED-DELIMITER",
	SynExpectIdentifier:         "SYN-EXPECT-IDENTIFIER",
	SynExpectSemicolon:          "SYN-EXPECT-SEMICOLON",
	SynExpectBody:               "SYN-EXPECT-BODY",
	SynUnexpectedTopLevel:       "SYN-UNEXPECTED-TOP-LEVEL",
	SynMalformedAttribute:       "SYN-MALFORMED-ATTRIBUTE",
	RewriteInfo:                 "REWRITE-INFO",
	RewriteUnknownMarkerArg:     "REWRITE-UNKNOWN-MARKER-ARG",
	RewriteDuplicateMarker:      "REWRITE-DUPLICATE-MARKER",
	RewriteInvalidModeArg:       "REWRITE-INVALID-MODE-ARG",
	RewriteMalformedMarker:      "REWRITE-MALFORMED-MARKER",
	IOLoadFileError:             "IO-LOAD-FILE",
	IOWriteFileError:            "IO-WRITE-FILE",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CODE-%04d", uint16(c))
}
