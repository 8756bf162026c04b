package appointment

import (
	"strconv"
	"time"
)

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatLongDate renders t as "29 de novembro de 2024".
func FormatLongDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + " de " + monthsPT[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}
