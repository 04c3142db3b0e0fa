package budget

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Renderer interface {
	RenderBudget(result Result) (string, error)
}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

func (r *CsvRendererImpl) RenderBudget(result Result) (string, error) {
	data := [][]string{
		{"Category", "Source", "Total (EUR)"},
		{"Museums & attractions", source(result.MuseumItems), amountToString(result.MuseumTotal)},
		{"Food", source(result.RestaurantItems), amountToString(result.FoodTotal)},
		{"Transport", "estimate", amountToString(result.TransportTotal)},
		{"Total", "", amountToString(result.GrandTotal)},
		{"Days", "", strconv.FormatFloat(result.Inputs.Days, 'f', -1, 64)},
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func source(favorites int) string {
	if favorites == 0 {
		return "estimate"
	}
	return "favorites (" + strconv.Itoa(favorites) + ")"
}

func amountToString(m Money) string {
	return strconv.FormatFloat(m.Euros(), 'f', 2, 64)
}
