package utils

import "time"

// MagentoDateTimeLayout é o formato aceito pelos filtros de data da API do Magento
const MagentoDateTimeLayout = "2006-01-02 15:04:05"

func FormatDateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}

func FormatMagentoDateTime(t time.Time) string {
	return t.Format(MagentoDateTimeLayout)
}
