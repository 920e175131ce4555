package interpreter

import (
	"errors"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Command is one move letter. Values outside Advance, RotateLeft and
// RotateRight can be built by hand and are rejected at run time.
type Command byte

const (
	Advance     Command = 'A'
	RotateLeft  Command = 'G'
	RotateRight Command = 'D'
)

func (c Command) String() string {
	switch c {
	case Advance:
		return "advance"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	}
	return "illegal(" + string(rune(c)) + ")"
}

// MarshalText encodes a command as its letter.
func (c Command) MarshalText() ([]byte, error) {
	return []byte{byte(c)}, nil
}

// Sequence is an ordered move script.
type Sequence []Command

// String renders the script back in its upper-case letter form.
func (s Sequence) String() string {
	var b strings.Builder
	for _, c := range s {
		b.WriteByte(byte(c))
	}
	return b.String()
}

var scriptLexer = mustScriptLexer()

func mustScriptLexer() *lexmachine.Lexer {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`[Aa]`), command(Advance))
	lex.Add([]byte(`[Gg]`), command(RotateLeft))
	lex.Add([]byte(`[Dd]`), command(RotateRight))
	if err := lex.Compile(); err != nil {
		panic(err)
	}
	return lex
}

func command(c Command) lexmachine.Action {
	return func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return c, nil
	}
}

// ParseSequence tokenises a move script of one or more A, G, D letters in
// any case.
func ParseSequence(raw string) (Sequence, error) {
	scanner, err := scriptLexer.Scanner([]byte(raw))
	if err != nil {
		return nil, malformed(FieldSequence, raw, err)
	}
	var seq Sequence
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			fe := malformed(FieldSequence, raw, err)
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				fe.Column = ui.StartTC + 1
			}
			return nil, fe
		}
		seq = append(seq, tok.(Command))
	}
	if len(seq) == 0 {
		return nil, malformed(FieldSequence, raw, errors.New("empty sequence"))
	}
	return seq, nil
}
