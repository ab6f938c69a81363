package loader

import (
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	time.DateOnly,
	"02/01/2006 15:04:05",
	time.DateTime,
}

// parseDate lê a data do pedido. O formato do arquivo é dia/mês/ano, mas planilhas
// podem trazer a data como número serial do Excel.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return truncate(parsed), true
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return truncate(parsed), true
		}
	}

	return time.Time{}, false
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
