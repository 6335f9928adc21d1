package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/oneframe/pkg/calendar"
)

// MonthOptions
type MonthOptions struct {
	MonthString string
	OpenString  string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Month to show, example: --month="2025-03". Defaults to this month.`)
	cmd.Flags().StringVar(&o.OpenString, "open", "",
		`Open the entry recorded on a day, example: --open="2025-03-05".`)
}

// GetMonth returns the requested month, or the zero Date for the current one.
func (o *MonthOptions) GetMonth() (calendar.Date, error) {
	if o.MonthString == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseMonth(o.MonthString)
}

func (o *MonthOptions) GetOpen() (calendar.Date, error) {
	if o.OpenString == "" {
		return calendar.Date{}, nil
	}
	return calendar.Parse(o.OpenString)
}
