package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("clientruntime: prompt aborted")

// Prompter asks the user to pick a content type.
type Prompter interface {
	SelectContentType(ctx context.Context, options []string, def string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) SelectContentType(ctx context.Context, options []string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", errors.New("clientruntime: no content types registered")
	}
	prompt := &survey.Select{
		Message: "Content type:",
		Options: options,
		Help:    "Payload media type used to pick a parse node factory.",
	}
	for _, option := range options {
		if option == def {
			prompt.Default = def
			break
		}
	}

	var out string
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
