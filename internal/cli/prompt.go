package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// promptName asks the user for a profile name on the terminal.
func promptName(label string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("a profile name is required and stdin is not a terminal")
	}

	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("name cannot be empty")
			}
			return nil
		},
	}

	name, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return "", errors.New("cancelled")
		}
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// confirm asks a yes/no question. Non-interactive stdin counts as "no";
// callers offer a --force flag for scripted use.
func confirm(label string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}
