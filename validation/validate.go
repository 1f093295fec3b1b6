package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

func Validate(data interface{}) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(data)
}

func ValidateCNPJ(cnpj string) bool {
	reg := regexp.MustCompile(`\D`)
	cnpj = reg.ReplaceAllString(cnpj, "")

	if len(cnpj) != 14 {
		return false
	}

	for i := 0; i < 10; i++ {
		if cnpj == strings.Repeat(strconv.Itoa(i), 14) {
			return false
		}
	}

	pesos1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i < 12; i++ {
		digit, err := strconv.Atoi(string(cnpj[i]))
		if err != nil {
			return false
		}
		sum += digit * pesos1[i]
	}
	var firstCheck int
	remainder := sum % 11
	if remainder < 2 {
		firstCheck = 0
	} else {
		firstCheck = 11 - remainder
	}
	if firstCheck != int(cnpj[12]-'0') {
		return false
	}

	pesos2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum = 0
	for i := 0; i < 13; i++ {
		digit, err := strconv.Atoi(string(cnpj[i]))
		if err != nil {
			return false
		}
		sum += digit * pesos2[i]
	}
	var secondCheck int
	remainder = sum % 11
	if remainder < 2 {
		secondCheck = 0
	} else {
		secondCheck = 11 - remainder
	}
	return secondCheck == int(cnpj[13]-'0')
}

func ValidatePhone(phone string) bool {
	re := regexp.MustCompile(`^(?:\+55\s?)?(?:\(?\d{2}\)?\s?)?(?:9\d{4}|\d{4})-?\d{4}$`)
	return re.MatchString(phone)
}
