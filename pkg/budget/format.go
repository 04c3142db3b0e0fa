package budget

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts for display, e.g. "€60.10".
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

func (f *Formatter) Format(m Money) string {
	return f.printer.Sprintf("€%.2f", m.Euros())
}

// Breakdown is the formatted view of a Result.
type Breakdown struct {
	Museum    string `json:"museumTotal"`
	Food      string `json:"foodTotal"`
	Transport string `json:"transportTotal"`
	Grand     string `json:"grandTotal"`
}

func (f *Formatter) Breakdown(r Result) Breakdown {
	return Breakdown{
		Museum:    f.Format(r.MuseumTotal),
		Food:      f.Format(r.FoodTotal),
		Transport: f.Format(r.TransportTotal),
		Grand:     f.Format(r.GrandTotal),
	}
}
