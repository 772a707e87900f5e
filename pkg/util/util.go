package util

import (
	"fmt"
	"github.com/guumaster/logsymbols"
	"github.com/manifoldco/promptui"
	"strings"
)

// UserConfirmation asks a yes/no question. Anything other than y/yes
// (case-insensitive) counts as a decline, as does an interrupted prompt.
func UserConfirmation(msg string) (bool, error) {
	StopSpinner("", logsymbols.Success)
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("%s [y/N]", msg),
	}
	result, err := prompt.Run()
	if err != nil {
		return false, err
	}
	lower := strings.ToLower(strings.TrimSpace(result))
	return lower == "y" || lower == "yes", nil
}

func PrintWarning(msg string) {
	fmt.Printf("%s %s\n", logsymbols.Warning, msg)
}
