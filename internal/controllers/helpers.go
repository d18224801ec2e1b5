package controllers

import (
	"fmt"
	"strings"
)

func camposObligatorios(fields []string) string {
	return fmt.Sprintf("Los campos %s son obligatorios.", strings.Join(fields, ", "))
}
