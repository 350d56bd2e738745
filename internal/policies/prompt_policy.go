package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// PromptMode selects how reconciliation questions are answered.
type PromptMode string

const (
	PromptInteractive PromptMode = "interactive"
	PromptAccept      PromptMode = "accept"
	PromptReject      PromptMode = "reject"
)

func ParsePromptMode(value string) (PromptMode, error) {
	switch mode := PromptMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return PromptReject, nil
	case PromptInteractive, PromptAccept, PromptReject:
		return mode, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown prompt mode: %s", value))
	}
}
