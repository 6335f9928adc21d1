package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/diary"
)

const (
	layoutISO = "2006-01-02"
)

// EntryOptions
type EntryOptions struct {
	Image    string
	Emotion  string
	Title    string
	Content  string
	OnString string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Image, "image", "",
		`Image reference for the day, example: --image="content://media/external/images/42".`)
	cmd.Flags().StringVarP(&o.Emotion, "emotion", "e", "",
		fmt.Sprintf("How the day felt. One of %s.", strings.Join(EmotionNames(), ", ")))
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Short title for the entry.")
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		"A few words about the day.")
	cmd.Flags().StringVar(&o.OnString, "at", "",
		`Record the entry on another day, example: --at="2025-02-28".`)
}

func (o *EntryOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (o *EntryOptions) GetEmotion() (diary.Emotion, error) {
	return diary.ParseEmotion(o.Emotion)
}

// EmotionNames lists the accepted --emotion values.
func EmotionNames() []string {
	names := make([]string, 0, len(diary.AllEmotions()))
	for _, e := range diary.AllEmotions() {
		names = append(names, string(e))
	}
	return names
}
