package engine

import "strings"

// Kind tags a verdict. Exactly one kind is produced per evaluation.
type Kind string

const (
	// KindError is a critical-filter or hard-validation failure.
	KindError Kind = "error"

	// KindWarning is one or more accumulated soft-validation findings.
	KindWarning Kind = "warning"

	// KindOK is a fully compliant document.
	KindOK Kind = "ok"
)

// Verdict is the tagged result of evaluating one document. Error and OK
// verdicts carry a single message; Warning verdicts carry the warnings in
// evaluation order.
type Verdict struct {
	Kind     Kind     `json:"kind"`
	Messages []string `json:"messages"`
}

func errorVerdict(message string) Verdict {
	return Verdict{Kind: KindError, Messages: []string{message}}
}

func warningVerdict(messages []string) Verdict {
	return Verdict{Kind: KindWarning, Messages: messages}
}

func okVerdict(message string) Verdict {
	return Verdict{Kind: KindOK, Messages: []string{message}}
}

// Message returns the first message, or "" for an empty verdict.
func (v Verdict) Message() string {
	if len(v.Messages) == 0 {
		return ""
	}
	return v.Messages[0]
}

// Verdict prefixes at the external-interface boundary. Downstream consumers
// classify rendered verdicts purely by scanning for these tokens.
const (
	PrefixError   = "[ERROR]"
	PrefixWarning = "[WARNING]"
	PrefixOK      = "[OK]"
)

// String renders the verdict with its bracket prefix. Warning verdicts
// render one prefixed line per message, newline-joined.
func (v Verdict) String() string {
	switch v.Kind {
	case KindError:
		return PrefixError + " " + v.Message()
	case KindWarning:
		lines := make([]string, len(v.Messages))
		for i, m := range v.Messages {
			lines[i] = PrefixWarning + " " + m
		}
		return strings.Join(lines, "\n")
	default:
		return PrefixOK + " " + v.Message()
	}
}
