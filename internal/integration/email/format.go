package email

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter renders amounts for a fixed locale with two fraction digits.
type MoneyFormatter struct {
	printer  *message.Printer
	currency string
}

// NewMoneyFormatter creates a formatter for a BCP 47 locale such as "ar-EG".
func NewMoneyFormatter(locale, currency string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &MoneyFormatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}, nil
}

// Amount formats an amount with grouping and exactly two fraction digits.
func (f *MoneyFormatter) Amount(amount decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(amount.InexactFloat64(), number.Scale(2)))
}

// Money formats an amount followed by the currency label.
func (f *MoneyFormatter) Money(amount decimal.Decimal) string {
	if f.currency == "" {
		return f.Amount(amount)
	}
	return f.Amount(amount) + " " + f.currency
}

// Date formats a date as day/month/year.
func (f *MoneyFormatter) Date(t time.Time) string {
	return t.Format("02/01/2006")
}
