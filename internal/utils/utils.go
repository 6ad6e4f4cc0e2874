package utils

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidNumber indica uma entrada numérica mal formada (ID ou preço).
var ErrInvalidNumber = errors.New("invalid number")

// NormalizeInput remove espaços nas pontas e passa para minúsculas.
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// IsBlank reporta se o usuário não digitou nada.
func IsBlank(input string) bool {
	return strings.TrimSpace(input) == ""
}

// ParseID converte a entrada do usuário em um ID inteiro.
func ParseID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "parse id %q", input)
	}
	return id, nil
}

// ParsePrice converte a entrada do usuário em um preço. Valores negativos
// são aceitos.
func ParsePrice(input string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "parse price %q", input)
	}
	return price, nil
}
