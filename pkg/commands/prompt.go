package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/commands/options"
	"tableflip.dev/oneframe/pkg/diary"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

// promptEntry asks for every field of o that was not set by a flag.
func promptEntry(cmd *cobra.Command, o *options.EntryOptions) error {
	var err error
	if o.Image == "" {
		if o.Image, err = promptText(cmd, "Image", true); err != nil {
			return err
		}
	}
	if o.Emotion == "" {
		e, err := promptEmotion(cmd)
		if err != nil {
			return err
		}
		o.Emotion = string(e)
	}
	if o.Title == "" {
		if o.Title, err = promptText(cmd, "Title", false); err != nil {
			return err
		}
	}
	if o.Content == "" {
		if o.Content, err = promptText(cmd, "Content", false); err != nil {
			return err
		}
	}
	return nil
}

func promptEmotion(cmd *cobra.Command) (diary.Emotion, error) {
	emotions := diary.AllEmotions()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Label | cyan }}",
		Inactive: "   {{ .Label }}",
		Selected: "➜  {{ .Label | cyan }}",
	}

	searcher := func(input string, index int) bool {
		name := string(emotions[index])
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "How did the day feel",
		Items:     emotions,
		Templates: templates,
		Size:      len(emotions),
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return emotions[i], nil
}

func promptText(cmd *cobra.Command, label string, required bool) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}
	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}
	if required {
		prompt.Validate = func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New(strings.ToLower(label) + " is required")
			}
			return nil
		}
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}
