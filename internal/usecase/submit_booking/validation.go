package submit_booking

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// contactForm контактные данные после обрезки пробелов
type contactForm struct {
	Name    string `validate:"required,name_len"`
	Phone   string `validate:"required,phone"`
	Comment string `validate:"comment_len"`
}

var contactValidator = newContactValidator()

func newContactValidator() *validator.Validate {
	v := validator.New()
	rules := map[string]validator.Func{
		"phone":       validatePhone,
		"name_len":    maxRunes(domain.MaxCustomerNameLen),
		"comment_len": maxRunes(domain.MaxCustomerCommentLen),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// maxRunes длина строки в символах не больше limit
func maxRunes(limit int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= limit
	}
}

// validatePhone в номере должно быть не меньше MinPhoneDigits цифр, формат не важен
func validatePhone(fl validator.FieldLevel) bool {
	return countDigits(fl.Field().String()) >= domain.MinPhoneDigits
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// normalizeRequest обрезает пробелы у всех полей формы
func normalizeRequest(req *Request) contactForm {
	return contactForm{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Comment: strings.TrimSpace(req.Comment),
	}
}

// validateContact валидирует контактные данные, возвращает первую ошибку по порядку полей
func validateContact(form contactForm) error {
	err := contactValidator.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrInvalidContact
	}

	fe := verrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Message: fieldMessage(fe.Field(), fe.Tag()),
	}
}

func fieldMessage(field, tag string) string {
	switch field {
	case "Name":
		if tag == "name_len" {
			return "Имя слишком длинное"
		}
		return "Пожалуйста, введите имя"
	case "Phone":
		return "Пожалуйста, введите корректный номер телефона"
	case "Comment":
		return "Комментарий слишком длинный"
	}
	return "Проверьте введённые данные"
}
